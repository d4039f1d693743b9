package request

type SetStartEmptyRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
