// Package derrors defines the errors a dialog turn can fail with. Each one
// carries the line spoken back to the user when it surfaces.
package derrors

import "errors"

// TurnError is a turn-level failure with a user-facing spoken message.
type TurnError struct {
	speech string
}

func New(speech string) *TurnError { return &TurnError{speech: speech} }

func (e *TurnError) Error() string { return e.speech }

// Speech returns the line to speak back to the user.
func (e *TurnError) Speech() string { return e.speech }

var (
	// ErrUnknownUser aborts the request: without a user id there is no way
	// to resolve preferences.
	ErrUnknownUser = New("Sorry, but I can't for the life of me seem to figure out who you are or how you got here.")

	ErrNoOngoingConversation = New("Sorry, I heard what sounded like an answer to a question, but I don't think we had an ongoing conversation.")

	ErrNoPendingQuestion = New("<speak>Sorry, I heard what sounded like an answer to a question, but I don't recall asking a yes or no question.</speak>")

	ErrUnrecognizedQuestionTopic = New("<speak>Sorry, I know I asked you a question, but I seem to have forgotten what I was doing.</speak>")

	ErrPreferenceUpdateFailed = New("Sorry, something went wrong and I couldn't change the level of my profanity filter.")

	ErrMetadataUnavailable = New("Sorry, something went wrong and I lost track of our conversation.")

	// ErrNothingToRepeat covers a REPEAT with no prior substantive turn to
	// replay.
	ErrNothingToRepeat = New("Sorry, I don't have anything to repeat yet. Ask me for a character first.")
)

// Speech extracts the user-facing line from err, falling back to a generic
// apology for anything that is not a TurnError.
func Speech(err error) string {
	var te *TurnError
	if errors.As(err, &te) {
		return te.speech
	}
	return "Sorry, something went wrong."
}
