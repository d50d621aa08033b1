package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode разбирает JSON тело запроса в целевой тип
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}
