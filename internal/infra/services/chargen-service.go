package services

import (
	"fmt"
	"math/rand"
	"sync"

	"chargen-connector/internal/domain/conversation"
	"chargen-connector/internal/domain/derrors"
	"chargen-connector/internal/domain/dto"
	"chargen-connector/internal/domain/entities"
	Iservices "chargen-connector/internal/domain/interfaces/services"
	"chargen-connector/internal/infra/logger"
)

var repeatHeadings = []string{
	"Listen the fuck up this time, it's a",
	"I said, it's a",
	"Pay attention bro, it's a gotdamn",
	"That's right, it's a",
	"You heard me just fine, it's a fucking",
	"I'll tell you again, but only because I love talking about my fucking",
	"Ya snooze ya lose. Shit, fine. It's a",
	"How did you already forget that shit? It's a fucking",
	"Repeat that? It's a gotdamn",
}

var delayedVoiceQuestions = []string{
	"What else can I do for you?",
	"What else do you want to do?",
	"How else can I help you?",
	"What else do you need bro?",
	"What should I do now?",
	"What else would you like me to do?",
}

// ChargenService dispatches inbound turns and composes the multi-channel
// response for each.
type ChargenService struct {
	Logger      *logger.Logger
	Preferences Iservices.IPreferencesService
	Generator   Iservices.IGeneratorService
	ShitMode    bool

	mu  sync.Mutex
	rng *rand.Rand
}

func NewChargenService(logger *logger.Logger, preferences Iservices.IPreferencesService, generator Iservices.IGeneratorService, shitMode bool, rng *rand.Rand) *ChargenService {
	return &ChargenService{
		Logger:      logger,
		Preferences: preferences,
		Generator:   generator,
		ShitMode:    shitMode,
		rng:         rng,
	}
}

// HandleRequest is the primary entry point for dispatching a turn. The
// returned output echoes the request's conversation history; an unknown
// subject leaves it otherwise untouched.
func (cs *ChargenService) HandleRequest(in *dto.ServiceInput) (*dto.ServiceOutput, error) {
	out := &dto.ServiceOutput{Metadata: &dto.ChargenMetadata{}}
	if in.Metadata != nil {
		out.Metadata.ConversationHistory = in.Metadata.ConversationHistory
	}
	if err := cs.dispatch(in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *ChargenService) dispatch(in *dto.ServiceInput, out *dto.ServiceOutput) error {
	if in.UserID == "" {
		cs.Logger.Error("Unknown user, could not retrieve user preferences.")
		return derrors.ErrUnknownUser
	}

	switch in.Subject {
	case dto.SubjectGenerateCharacter, dto.SubjectStartOfConversation:
		return cs.doGenerateCharacterRequest(in, out, cs.Preferences.Resolve(in.UserID))
	case dto.SubjectHelp:
		cs.doHelpRequest(out)
		return nil
	case dto.SubjectEnableProfanity:
		return cs.toggleProfanity(in, out, true)
	case dto.SubjectDisableProfanity:
		return cs.toggleProfanity(in, out, false)
	case dto.SubjectEndOfConversation:
		cs.doGoodbyeRequest(out)
		return nil
	case dto.SubjectCancel, dto.SubjectStop:
		cs.doStopRequest(out)
		return nil
	case dto.SubjectRepeat:
		return cs.doRepeatRequest(in, out, cs.Preferences.Resolve(in.UserID))
	case dto.SubjectYes:
		return cs.doYesOrNoRequest(in, out, true)
	case dto.SubjectNo:
		return cs.doYesOrNoRequest(in, out, false)
	default:
		// unrecognized subjects are a deliberate no-op
		return nil
	}
}

func (cs *ChargenService) doGenerateCharacterRequest(in *dto.ServiceInput, out *dto.ServiceOutput, prefs *entities.UserPreferences) error {
	if prefs == nil || prefs.AllowProfanity == nil {
		// lazy initialization: in shit mode ask first, otherwise record
		// "disallowed" silently and carry on
		if cs.ShitMode {
			return cs.initializePreferences(in, out)
		}
		if err := cs.Preferences.SetProfanityAllowed(in.UserID, false); err != nil {
			cs.Logger.Error(fmt.Sprintf("Couldn't record default profanity preference for user '%s': %v", in.UserID, err))
			return derrors.ErrPreferenceUpdateFailed
		}
	}

	heading := cs.Generator.GenerateHeading()
	character := cs.Generator.GenerateCharacter()
	delayedVoice := cs.Generator.GenerateResponse()

	out.VoiceOutput.Ssmltext = heading + " " + character
	out.VisualOutput.Title = heading
	out.VisualOutput.Text = character
	out.DelayedVoiceOutput.Ssmltext = delayedVoice + " " + cs.randomDelayedVoiceQuestion()

	out.Metadata.Heading = heading
	out.Metadata.Character = character

	// Stamp the last substantive incoming turn too, so a later REPEAT can
	// recover the exact content. A history without one has nothing to
	// stamp; the content still lives on the outgoing metadata.
	if entry, err := conversation.LastSubstantiveEntry(out.Metadata.ConversationHistory, conversation.MetaSubjects); err == nil {
		if entry.Metadata == nil {
			entry.Metadata = &dto.ChargenMetadata{}
		}
		entry.Metadata.Heading = heading
		entry.Metadata.Character = character
	}

	out.ConversationEnded = false
	filterServiceOutput(out, prefs, cs.ShitMode)
	return nil
}

func (cs *ChargenService) doHelpRequest(out *dto.ServiceOutput) {
	ssmlText := "It's easy, just ask: 'Who is my character?'." +
		" You can also say: 'repeat', or 'another'"
	if cs.ShitMode {
		ssmlText += ", or you can ask to enable or disable profanity."
	}

	visualText := ssmlText +
		"\n\nFull usage can be found here: http://www.3po-labs.com/CharacterGenerator.html " +
		"\n\nOur skill is based on %s by Ryan J. Grant, based on WTFEngine by Justin Windle"

	generatorLink := "https://goo.gl/qYSFCi"
	if cs.ShitMode {
		generatorLink = "www.whothefuckismydndcharacter.com"
	}

	out.VoiceOutput.Ssmltext = ssmlText
	out.VisualOutput.Text = fmt.Sprintf(visualText, generatorLink)
	out.VisualOutput.Title = "Character Generator Help"
	out.DelayedVoiceOutput.Ssmltext = cs.randomDelayedVoiceQuestion()
	out.ConversationEnded = false
}

func (cs *ChargenService) doGoodbyeRequest(out *dto.ServiceOutput) {
	out.VoiceOutput.Ssmltext = "See ya!"
	out.VoiceOutput.Plaintext = "See ya!"
	out.ConversationEnded = true
}

func (cs *ChargenService) doStopRequest(out *dto.ServiceOutput) {
	out.VoiceOutput.Ssmltext = "You bet your bottom."
	out.VoiceOutput.Plaintext = "You bet your bottom."
	out.ConversationEnded = true
}

func (cs *ChargenService) doYesOrNoRequest(in *dto.ServiceInput, out *dto.ServiceOutput, answer bool) error {
	if in.Metadata == nil || len(in.Metadata.ConversationHistory) == 0 {
		return derrors.ErrNoOngoingConversation
	}
	entry, err := conversation.LastSubstantiveEntry(in.Metadata.ConversationHistory, conversation.MetaSubjects)
	if err != nil {
		return derrors.ErrNoOngoingConversation
	}
	if entry.Metadata == nil || entry.Metadata.QuestionTopic == dto.QuestionTopicNone {
		return derrors.ErrNoPendingQuestion
	}

	switch entry.Metadata.QuestionTopic {
	case dto.QuestionTopicAllowProfanity:
		if err := cs.Preferences.SetProfanityAllowed(in.UserID, answer); err != nil {
			cs.Logger.Error(fmt.Sprintf("Couldn't update allowable profanity state for user '%s': %v", in.UserID, err))
			return derrors.ErrPreferenceUpdateFailed
		}
	default:
		return derrors.ErrUnrecognizedQuestionTopic
	}

	// the question is answered; consume it and resume whatever the user
	// originally asked for
	entry.Metadata.QuestionTopic = dto.QuestionTopicNone
	in.Subject = entry.MessageSubject
	return cs.dispatch(in, out)
}

func (cs *ChargenService) doRepeatRequest(in *dto.ServiceInput, out *dto.ServiceOutput, prefs *entities.UserPreferences) error {
	if in.Metadata == nil {
		return derrors.ErrNothingToRepeat
	}
	entry, err := conversation.LastSubstantiveEntry(in.Metadata.ConversationHistory, conversation.MetaSubjects)
	if err != nil {
		return derrors.ErrNothingToRepeat
	}
	if entry.Metadata == nil || entry.Metadata.Character == "" {
		return derrors.ErrNothingToRepeat
	}

	heading := cs.randomRepeatHeading()
	character := entry.Metadata.Character

	out.VoiceOutput.Ssmltext = heading + " " + character
	out.VisualOutput.Title = heading
	out.VisualOutput.Text = character
	out.DelayedVoiceOutput.Ssmltext = cs.Generator.GenerateResponse() + " " + cs.randomDelayedVoiceQuestion()

	out.ConversationEnded = false
	filterServiceOutput(out, prefs, cs.ShitMode)
	return nil
}

func (cs *ChargenService) initializePreferences(in *dto.ServiceInput, out *dto.ServiceOutput) error {
	entry, err := conversation.LastSubstantiveEntry(out.Metadata.ConversationHistory, conversation.MetaSubjects)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Could not operate on conversation history metadata: %v", err))
		return derrors.ErrMetadataUnavailable
	}
	if entry.Metadata == nil {
		entry.Metadata = &dto.ChargenMetadata{}
	}
	entry.Metadata.QuestionTopic = dto.QuestionTopicAllowProfanity
	out.Metadata.QuestionTopic = dto.QuestionTopicAllowProfanity

	cs.Logger.Info(fmt.Sprintf("Initializing preferences for user '%s'.", in.UserID))

	out.VoiceOutput.Ssmltext = "Hi! It looks like it's your first time here. Before we start, I should tell you that I sometimes swear when I get excited. Are you comfortable hearing profanity?"
	out.VisualOutput.Title = "Hi. How do you feel about profanity?"
	out.VisualOutput.Text = "Hi! It looks like this is the first time I've seen you here. Are you okay with me using profanity?\n\n Say 'yes' if that's cool with you, or 'no' if you want me to watch my mouth."
	out.DelayedVoiceOutput.Ssmltext = "It's okay if you don't want to hear bad words, and you can always change your mind later. Just say 'yes' or 'no'."
	out.ConversationEnded = false
	return nil
}

func (cs *ChargenService) toggleProfanity(in *dto.ServiceInput, out *dto.ServiceOutput, enable bool) error {
	if err := cs.Preferences.SetProfanityAllowed(in.UserID, enable); err != nil {
		cs.Logger.Error(fmt.Sprintf("Couldn't update allowable profanity state for user '%s': %v", in.UserID, err))
		return derrors.ErrPreferenceUpdateFailed
	}

	confirmation := "You bet your bottom. What else can I do for you?"
	if enable {
		confirmation = "You bet your ass. What else can I do for you?"
	}
	out.VoiceOutput.Ssmltext = confirmation
	out.VisualOutput.Text = confirmation
	out.VisualOutput.Title = "Updated!"
	out.ConversationEnded = false
	return nil
}

func (cs *ChargenService) randomRepeatHeading() string {
	return cs.randomLine(repeatHeadings)
}

func (cs *ChargenService) randomDelayedVoiceQuestion() string {
	return cs.randomLine(delayedVoiceQuestions)
}

func (cs *ChargenService) randomLine(lines []string) string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return lines[cs.rng.Intn(len(lines))]
}
