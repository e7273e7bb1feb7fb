package dto

// Respuesta es el sobre JSON de toda la API:
// {success, message?, data?, total?}. Total solo aparece en listados.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// OK construye una respuesta exitosa con mensaje y datos.
func OK(message string, data any) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

// OKTotal construye una respuesta exitosa de listado con total de filas.
func OKTotal(message string, data any, total int) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data, Total: &total}
}

// Fail construye una respuesta de error con mensaje.
func Fail(message string) Respuesta {
	return Respuesta{Success: false, Message: message}
}
