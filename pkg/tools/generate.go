package tools

// GeneratedDocument is the payload of the generate_* tools.
type GeneratedDocument struct {
	Target   string `json:"target"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}
