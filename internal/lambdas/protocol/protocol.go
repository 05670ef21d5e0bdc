package protocol

type SlashCommandRequest struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

const BadRequestKind = "BadRequest"
