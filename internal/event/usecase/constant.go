package usecase

import "time"

// Slot search bounds.
const (
	// forwardHorizon limits candidate slots to 96 hours after "now".
	forwardHorizon = 96 * time.Hour
	// slotStep is the spacing between candidate slots.
	slotStep = 3 * time.Hour
	// candidateWindow is the forecast window evaluated per candidate.
	candidateWindow = time.Hour
)

// Daytime window: a slot whose local clock time falls within 07:00-19:00
// inclusive counts as daytime. Minutes from midnight.
const (
	daytimeStartMinutes = 7 * 60
	daytimeEndMinutes   = 19 * 60
)

// Fallback coordinates substituted when a coordinate field fails float
// parsing. Bratislava city centre.
const (
	fallbackLatitude  = 48.1628
	fallbackLongitude = 17.1785
)

// truthyTokens is the allow-list for boolean coercion. Anything else maps to
// false. LLM output is never evaluated, only matched against this list.
var truthyTokens = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true, "1": true,
}

// User-facing messages for domain-negative outcomes.
const (
	reasonIndoorEvent    = "indoor event"
	reasonAlreadyStarted = "event has already started"
	rejectionMessage     = "I could not piece your event together from this conversation. Please start over and describe your plan again."
)

// Oracle prompts. Field names and expected-content descriptions are appended
// by the helpers in helpers.go.

const extractionSystemPrompt = `You are an event planning assistant. You receive a free-text description of a planned activity and turn it into a structured event template.

RULES:
1. Return ONLY a valid JSON object with exactly these keys: %s.
2. Every value must be a JSON string. The expected content of each field is:
%s
3. If the text does not let you confidently fill a field, set it to exactly "%s". Never invent facts the text does not support.
4. Exception: you may infer "description" and "indoor" from the title and activity context even when they are not stated outright.`

const updateSystemPrompt = `You are an event planning assistant refining a partially filled event template. You receive the current template as JSON, the question the user was asked, and the user's answer.

RULES:
1. Fill only fields the answer supports; leave every other field exactly as it is.
2. If the answer names a place, you may fill "latitude" and "longitude" with that place's coordinates.
3. A value of "%s" means the field is still unknown; keep that exact value unless the answer fills it.
4. Return ONLY the full updated JSON object with exactly these keys: %s.
5. Every value must be a JSON string. The expected content of each field is:
%s`

const consistencySystemPrompt = `You are validating a filled event template. You receive a JSON object; the expected content of each field is:
%s
Answer with exactly "YES" when every field is structurally and semantically valid. Otherwise answer "NO" followed by what is wrong.`

const questionSystemPrompt = `You are an event planning assistant. The event template is still missing the field %q (%s). Ask the user exactly one short question to learn this field, and nothing else. If the missing field is latitude or longitude, ask for the name of the place instead of raw coordinates. Return only the question text.`

const narrationSystemPrompt = `You are an event planning assistant. Summarize the planned event you receive as JSON back to the user in one or two friendly sentences, confirming what, when and where. Return only the summary text.`

const verdictSystemPrompt = `You are an expert in predicting how good an activity is based on the weather forecast. You receive a planned activity and a list of forecast parameters with their values. Decide whether the weather suits the activity, and explain how each parameter influenced the decision. Return ONLY a JSON object of this form: {"suitable": true or false, "reason": "explanation"}`
