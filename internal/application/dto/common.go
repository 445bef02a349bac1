package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse aviso no bloqueante para el usuario (validaciones rechazadas,
// límites del portal). El estado del store queda intacto cuando se emite.
type NoticeResponse struct {
	Notice string `json:"notice"`
}
