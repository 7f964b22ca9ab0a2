package dto

import "github.com/amirhossein-jamali/timekeeper/internal/domain/entity"

// DurationRequest is a seconds/nanoseconds pair as sent by clients.
// Either field may be out of range; the server normalizes it.
type DurationRequest struct {
	Secs  int64 `json:"secs"`
	Nanos int32 `json:"nanos"`
}

// ToEntity normalizes the request into a domain duration
func (r DurationRequest) ToEntity() entity.Duration {
	return entity.NewDuration(r.Secs, r.Nanos)
}

// DurationPairRequest carries the two operands of a duration operation
type DurationPairRequest struct {
	A *DurationRequest `json:"a" binding:"required"`
	B *DurationRequest `json:"b" binding:"required"`
}

// DurationResponse represents a normalized duration in API responses
type DurationResponse struct {
	Secs  int64  `json:"secs"`
	Nanos int32  `json:"nanos"`
	Text  string `json:"text"`
}

// NewDurationResponse builds a response from a domain duration
func NewDurationResponse(d entity.Duration) DurationResponse {
	return DurationResponse{
		Secs:  d.Secs,
		Nanos: d.Nanos,
		Text:  d.String(),
	}
}

// CompareResponse represents the ordering of two durations
type CompareResponse struct {
	Result   int    `json:"result"`
	Relation string `json:"relation"`
}

// NewCompareResponse maps -1, 0 and +1 to their relation names
func NewCompareResponse(result int) CompareResponse {
	relation := "equal"
	switch {
	case result < 0:
		relation = "less"
	case result > 0:
		relation = "greater"
	}
	return CompareResponse{Result: result, Relation: relation}
}
