// Package conversation provides helpers for searching a turn's conversation
// history.
package conversation

import (
	"errors"

	"chargen-connector/internal/domain/dto"
)

// ErrNoSubstantiveEntry is returned when every entry in the history carries
// a meta subject, or the history is empty.
var ErrNoSubstantiveEntry = errors.New("conversation history has no substantive entry")

// MetaSubjects are the follow-up subjects skipped when searching for the
// last substantive turn.
var MetaSubjects = map[string]struct{}{
	dto.SubjectRepeat: {},
	dto.SubjectYes:    {},
	dto.SubjectNo:     {},
}

// LastSubstantiveEntry scans history from most recent to oldest and returns
// the first entry whose subject is not in excluded. History is ordered
// oldest-first.
func LastSubstantiveEntry(history []*dto.ConversationHistoryEntry, excluded map[string]struct{}) (*dto.ConversationHistoryEntry, error) {
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		if entry == nil {
			continue
		}
		if _, meta := excluded[entry.MessageSubject]; meta {
			continue
		}
		return entry, nil
	}
	return nil, ErrNoSubstantiveEntry
}
