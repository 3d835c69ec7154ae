package dto

// ServiceInput is the inbound request envelope delivered by the voice
// platform webhook.
type ServiceInput struct {
	Subject  string           `json:"subject"`
	UserID   string           `json:"userId"`
	Metadata *ChargenMetadata `json:"metadata,omitempty"`
}

type VoiceOutput struct {
	Ssmltext  string `json:"ssmlText"`
	Plaintext string `json:"plainText,omitempty"`
}

type DelayedVoiceOutput struct {
	Ssmltext string `json:"ssmlText"`
}

type VisualOutput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ServiceOutput is the multi-channel response envelope: primary voice,
// delayed follow-up voice, and the visual card. DelayedVoiceOutput is
// populated on every turn that does not end the conversation.
type ServiceOutput struct {
	VoiceOutput        VoiceOutput        `json:"voiceOutput"`
	DelayedVoiceOutput DelayedVoiceOutput `json:"delayedVoiceOutput"`
	VisualOutput       VisualOutput       `json:"visualOutput"`
	ConversationEnded  bool               `json:"conversationEnded"`
	Metadata           *ChargenMetadata   `json:"metadata,omitempty"`
}
