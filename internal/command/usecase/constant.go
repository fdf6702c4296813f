package usecase

// Log prefixes
const (
	LogPrefixRoute    = "command.usecase.Route"
	LogPrefixDispatch = "command.usecase.dispatch"
)

// MsgProcessingError is the user-safe response on total pipeline failure.
const MsgProcessingError = "Sorry, I encountered an error processing your command."

// System instructions per specialist row.
const (
	SystemCodingTask = `You are an expert software engineer and technical advisor. Respond with complete working code: production-ready, runnable as-is, with brief explanations where they help.`

	SystemResearch = `You are a research assistant. Provide accurate, up-to-date information with sources. Focus on practical insights relevant to Bangladeshi entrepreneurs and digital businesses.`

	SystemCreative = `You are a creative AI assistant. You specialize in compelling content, optimized prompts for AI tools, and creative copy. You understand Bangladeshi culture and market.`

	SystemImagePrompt = `Create a detailed, optimized image generation prompt for the user's request. Include: subject, style, lighting, composition, quality modifiers. Return ONLY the prompt text, nothing else.`

	SystemEmailDraft = `Draft a complete email for the user's request: a clear subject line followed by the body. Professional tone unless the request says otherwise.`
)

// PromptWebBuilder asks the creative backend for a structured website
// specification the external builders can consume.
const PromptWebBuilder = `Convert this request into an optimized website builder prompt. Describe the site as a structured specification: purpose, pages, sections, style, and content. Request: %s`

// Fixed templated sentences for rows that make no external call.
const (
	TemplateDomainAction = "Domain request noted: %s. Connect a domain marketplace integration to execute it."
	TemplateSocialAction = "Social media request noted: %s. Connect a social media integration to execute it."
)

// Builder targets. The URL prefixes are a byte-exact client contract.
const (
	TargetPlatformBuilder = "lovable"

	BuilderURLPrimaryPrefix   = "https://lovable.dev/?autosubmit=true#prompt="
	BuilderURLSecondaryPrefix = "https://bolt.new/?prompt="
)
