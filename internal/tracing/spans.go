package tracing

// Span attribute keys.
const (
	AttrCommandID     = "command.id"
	AttrCommandType   = "command.type"
	AttrCommandSource = "command.source"

	AttrCollectionTarget = "collection.target"
	AttrCollectionName   = "collection.name"
	AttrCollectionLength = "collection.length"

	AttrResultFound   = "result.found"
	AttrResultRemoved = "result.removed"

	AttrScriptPath  = "script.path"
	AttrScriptSteps = "script.steps"
	AttrScriptStep  = "script.step"
)

// Span names and prefixes.
const (
	SpanPrefixCommand = "command.process."
	SpanScriptReplay  = "script.replay"
)

// Event names for span events.
const (
	EventStepFailed = "step.failed"
)
