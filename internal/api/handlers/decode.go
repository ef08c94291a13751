package handlers

import (
	"encoding/json"
	"net/http"
)

// Лимит тела запроса, защита от непомерных payload'ов
const maxBodyBytes = 1 << 20 // 1 MiB

// DecodeJSON декодирует тело запроса в dst
// Неизвестные поля запрещены, чтобы опечатка в имени поля не
// превращалась в молча проигнорированный параметр
func DecodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}
