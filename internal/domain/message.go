package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage es una entrada del transcript del asistente. Vive solo en la
// sesion del cliente; nunca se persiste.
type ChatMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}
