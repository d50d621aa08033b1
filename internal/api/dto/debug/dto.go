package debug

type UnlockRequest struct {
	Pin string `json:"pin"`
}

type UnlockResponse struct {
	AccessToken string `json:"access_token"`
}

type AddCoinsRequest struct {
	Amount int64 `json:"amount"`
}

type SetCoinsRequest struct {
	Amount int64 `json:"amount"`
}
