package llm

// ResumeRequest carries the intake content the generation prompt consumes.
// Optional fields should already hold the "Not provided" placeholder when
// the user left them empty.
type ResumeRequest struct {
	FullName            string
	Email               string
	Phone               string
	Location            string
	LinkedIn            string
	Portfolio           string
	JobTitle            string
	JobDescription      string
	ProfessionalSummary string
	Education           string
	Skills              string
	WorkExperience      string
	Projects            string
	Certifications      string
	Achievements        string
}

// ChatRequest is the OpenAI-compatible chat completion request the Groq
// API accepts.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is the OpenAI-compatible chat completion response.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents one completion choice in the response.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
