package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLISpan is a JSON-friendly node reference within one tree.
type CLISpan struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
}

// CLIPair is one completed correspondence. Inferred marks pairs the
// completer added beyond the coarse matcher's own output.
type CLIPair struct {
	Src      CLISpan `json:"src"`
	Dst      CLISpan `json:"dst"`
	Inferred bool    `json:"inferred"`
}
