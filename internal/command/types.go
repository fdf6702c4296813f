package command

// Mode selects the routing behavior for a request.
type Mode string

const (
	ModeTranslateOnly Mode = "translate_only"
	ModeAgent         Mode = "agent"
)

// Language is the declared input language.
type Language string

const (
	LanguageBangla   Language = "bn"
	LanguageEnglish  Language = "en"
	LanguageBanglish Language = "banglish"
)

// Intent is the classified purpose of an utterance. Closed enumeration;
// unknown labels from the classifier are normalized to IntentGeneral at the
// parse boundary.
type Intent string

const (
	IntentTranslateOnly   Intent = "translate_only"
	IntentCodingTask      Intent = "coding_task"
	IntentDeepResearch    Intent = "deep_research"
	IntentCreativeContent Intent = "creative_content"
	IntentWebBuilding     Intent = "web_building"
	IntentDomainUpdate    Intent = "domain_update"
	IntentDomainCheck     Intent = "domain_check"
	IntentSocialPost      Intent = "social_post"
	IntentSocialAnalytics Intent = "social_analytics"
	IntentCallContact     Intent = "call_contact"
	IntentOpenCamera      Intent = "open_camera"
	IntentOpenYouTube     Intent = "open_youtube"
	IntentOpenApp         Intent = "open_app"
	IntentImageGenerate   Intent = "image_generate"
	IntentEmailGenerate   Intent = "email_generate"
	IntentGeneral         Intent = "general"
)

// Known reports whether the label is a member of the closed intent set.
func (i Intent) Known() bool {
	switch i {
	case IntentTranslateOnly, IntentCodingTask, IntentDeepResearch,
		IntentCreativeContent, IntentWebBuilding, IntentDomainUpdate,
		IntentDomainCheck, IntentSocialPost, IntentSocialAnalytics,
		IntentCallContact, IntentOpenCamera, IntentOpenYouTube,
		IntentOpenApp, IntentImageGenerate, IntentEmailGenerate,
		IntentGeneral:
		return true
	}
	return false
}

// ClientActionable reports whether the client itself performs the action;
// the Router only forwards the classification for these.
func (i Intent) ClientActionable() bool {
	switch i {
	case IntentCallContact, IntentOpenCamera, IntentOpenYouTube, IntentOpenApp:
		return true
	}
	return false
}

// Backend identifies which adapter produced the final response text.
type Backend string

const (
	BackendClassifier Backend = "classifier"
	BackendCode       Backend = "code-backend"
	BackendResearch   Backend = "research-backend"
	BackendCreative   Backend = "creative-backend"
	BackendNone       Backend = "none"
)

// Request is the unified routing input. At least one of AudioBase64/Text must
// be present; the HTTP boundary rejects requests violating this before the
// Router runs.
type Request struct {
	AudioBase64 string
	AudioMIME   string
	Text        string
	Mode        Mode
	Language    Language
	Context     string
}

// Classification is the structured output of the classifier adapter. Transient;
// owned by a single routing call.
type Classification struct {
	NormalizedText string
	Intent         Intent
	Confidence     float64
	CulturalNote   string
	ActionData     map[string]any
}

// Envelope is the Router's stable output contract. Field names and types are
// the compatibility surface for every client and must not change across
// backend changes.
type Envelope struct {
	Translation         string  `json:"translation"`
	Intent              Intent  `json:"intent"`
	Confidence          float64 `json:"confidence"`
	CulturalNote        string  `json:"culturalNote,omitempty"`
	Response            string  `json:"response"`
	BackendUsed         Backend `json:"backendUsed"`
	BuilderPrompt       string  `json:"builderPrompt,omitempty"`
	TargetPlatform      string  `json:"targetPlatform,omitempty"`
	BuilderURLPrimary   string  `json:"builderUrlPrimary,omitempty"`
	BuilderURLSecondary string  `json:"builderUrlSecondary,omitempty"`
	ProcessingTimeMs    int64   `json:"processingTimeMs"`
	Error               string  `json:"error,omitempty"`
}
