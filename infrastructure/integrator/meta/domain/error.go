package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// APIError é devolvido para qualquer resposta fora da faixa 2xx
type APIError struct {
	StatusCode int
	Path       string
	Body       string
	Details    *ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details != nil && e.Details.Message != "" {
		return fmt.Sprintf("meta api %s: status %d: %s (type=%s code=%d subcode=%d fbtrace_id=%s)",
			e.Path, e.StatusCode, e.Details.Message, e.Details.Type, e.Details.Code, e.Details.ErrorSubcode, e.Details.FBTraceID)
	}
	return fmt.Sprintf("meta api %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}

// IsTokenExpired indica se o erro veio de um token inválido ou expirado
func (e *APIError) IsTokenExpired() bool {
	if e.Details == nil {
		return false
	}
	resp := ErrorResponse{Error: *e.Details}
	return resp.IsTokenExpired()
}
