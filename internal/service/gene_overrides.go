package service

// DefaultGeneOverrides maps NCT ids to their correct gene association
// list. An empty list marks a trial as sporadic, overriding any text
// match. To correct a future false positive, add the NCT id and the
// desired gene list here; the next refresh picks it up.
var DefaultGeneOverrides = map[string][]string{
	// False positive for SOD1, should be sporadic
	"NCT07294144": {},
}
