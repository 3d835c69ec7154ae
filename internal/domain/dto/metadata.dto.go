package dto

// Recognized message subjects. Anything outside this set is ignored by the
// dispatcher.
const (
	SubjectGenerateCharacter   = "GENERATE_CHARACTER"
	SubjectHelp                = "HELP"
	SubjectEnableProfanity     = "ENABLE_PROFANITY"
	SubjectDisableProfanity    = "DISABLE_PROFANITY"
	SubjectStartOfConversation = "START_OF_CONVERSATION"
	SubjectEndOfConversation   = "END_OF_CONVERSATION"
	SubjectCancel              = "CANCEL"
	SubjectStop                = "STOP"
	SubjectRepeat              = "REPEAT"
	SubjectYes                 = "YES"
	SubjectNo                  = "NO"
)

// QuestionTopic tags a pending yes/no question on a conversation turn.
type QuestionTopic string

const (
	QuestionTopicNone           QuestionTopic = ""
	QuestionTopicAllowProfanity QuestionTopic = "ALLOW_PROFANITY"
)

// ChargenMetadata is the typed metadata block carried on both requests and
// responses. Heading and Character hold the most recently generated content
// so a later REPEAT can replay it without regenerating.
type ChargenMetadata struct {
	ConversationHistory []*ConversationHistoryEntry `json:"conversationHistory,omitempty"`
	QuestionTopic       QuestionTopic               `json:"questionTopic,omitempty"`
	Heading             string                      `json:"heading,omitempty"`
	Character           string                      `json:"character,omitempty"`
}

// ConversationHistoryEntry is a single past turn, oldest-first in the
// history slice. Metadata is a pointer so stamping a prior entry is visible
// to whoever holds the history.
type ConversationHistoryEntry struct {
	MessageSubject string           `json:"messageSubject"`
	Metadata       *ChargenMetadata `json:"metadata,omitempty"`
}
