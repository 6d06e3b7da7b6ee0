package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Rating is a star rating clamped to 0..5. The column is numeric and some
// drivers hand it back as a string, so coercion happens at scan time rather
// than trusting the wire type.
type Rating int

func ClampRating(v float64) Rating {
	if math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return Rating(n)
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*r = ClampRating(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*r = 0
			return nil
		}
		*r = ClampRating(parsed)
		return nil
	}

	if string(data) == "null" {
		*r = 0
		return nil
	}

	return fmt.Errorf("rating: cannot unmarshal %s", data)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// Scan implements sql.Scanner so pgx can hand back numeric, text or null.
func (r *Rating) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = 0
	case int64:
		*r = ClampRating(float64(v))
	case float64:
		*r = ClampRating(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			*r = 0
			return nil
		}
		*r = ClampRating(parsed)
	case []byte:
		return r.Scan(string(v))
	default:
		return fmt.Errorf("rating: unsupported scan type %T", src)
	}
	return nil
}

type Review struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rating    Rating    `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewSummary struct {
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int     `json:"totalReviews"`
}
