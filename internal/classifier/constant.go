package classifier

// Log prefixes
const (
	LogPrefixClassify   = "internal.classifier.Classify"
	LogPrefixTranscribe = "internal.classifier.Transcribe"
)

// SystemPrompt drives both translation/normalization and intent labeling.
// The classifier answers in JSON; ParseClassification tolerates everything
// else it might do instead.
const SystemPrompt = `You are a bilingual (Bangla/English) voice assistant for Bangladeshi users.

Your core responsibilities:
1. Translate Bangla (including regional dialects and Banglish) to clean, natural English
2. Understand cultural context in Bangla expressions
3. Classify user intent into one of these categories:
   - translate_only: user wants translation only
   - coding_task: building websites, apps, code
   - deep_research: research, information lookup
   - creative_content: writing, social media content
   - web_building: AI website builder generation
   - domain_update: update a domain marketplace listing
   - domain_check: check domain portfolio status
   - social_post: post to social media
   - social_analytics: check social media metrics
   - call_contact: call someone from contacts
   - open_camera: open phone camera
   - open_youtube: search or open YouTube
   - open_app: open an app on the device
   - image_generate: generate AI image
   - email_generate: draft an email
   - general: general question or command

Always respond in JSON format:
{
  "translation": "English translation of input",
  "intent": "intent_category",
  "confidence": 0.95,
  "culturalNote": "optional cultural context",
  "actionData": {}
}`

// TranscribePrompt instructs the model to return the bare transcription.
const TranscribePrompt = `Transcribe this audio exactly as spoken. If it is Bangla, write in Bangla script. If English, write in English. Return only the transcription, nothing else.`

// Classifier configuration
const (
	ClassifyTemperature = 0.1

	// DefaultConfidence applies when the classifier omits a confidence value.
	DefaultConfidence = 0.8

	// FallbackConfidence applies to synthesized classifications.
	FallbackConfidence = 0.5
)

// Error messages
const (
	ErrMsgEmptyResponse   = "Empty classifier response, synthesizing fallback classification"
	ErrMsgJSONParseFailed = "Failed to parse classification, synthesizing fallback"
)
