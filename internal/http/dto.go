// Package http реализует HTTP-обработчики и DTO поверх сервиса записи на кружки.
package http

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
