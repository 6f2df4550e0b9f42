package roster

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TeacherPayload is the create request body. Callers send the same logical
// fields either at the top level or nested under "user"/"education";
// normalize flattens both shapes into one canonical input before validation.
type TeacherPayload struct {
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Qualification string            `json:"qualification"`
	Major         string            `json:"major"`
	Status        string            `json:"status"`
	Positions     []any             `json:"positions"`
	User          *UserPayload      `json:"user"`
	Education     *EducationPayload `json:"education"`
}

type UserPayload struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type EducationPayload struct {
	Degree string `json:"degree"`
	Major  string `json:"major"`
}

// createInput is the canonical shape every create goes through, whatever
// mix of top-level and nested fields the caller sent.
type createInput struct {
	Email         string
	Name          string
	Phone         string
	Address       string
	Qualification string
	Major         string
	Code          string
	Status        string
	PositionIDs   []uint
}

func (p *TeacherPayload) normalize() (*createInput, error) {
	var u UserPayload
	if p.User != nil {
		u = *p.User
	}
	var edu EducationPayload
	if p.Education != nil {
		edu = *p.Education
	}

	email := strings.ToLower(pick(p.Email, u.Email))
	if email == "" {
		return nil, fieldError("email", "email is required")
	}
	if !reEmail.MatchString(email) {
		return nil, fieldError("email", "invalid email format")
	}

	name := pick(p.Name, u.FullName, u.Name)
	if name == "" {
		name = emailLocalPart(email)
	}

	in := &createInput{
		Email:         email,
		Name:          name,
		Phone:         pick(p.Phone, u.Phone),
		Address:       pick(p.Address, u.Address),
		Qualification: pick(p.Qualification, edu.Degree),
		Major:         pick(p.Major, edu.Major),
		Code:          strings.TrimSpace(p.Code),
		Status:        strings.ToUpper(strings.TrimSpace(p.Status)),
		PositionIDs:   normalizePositionRefs(p.Positions),
	}
	if in.Status == "" {
		in.Status = StatusActive
	}
	if in.Status != StatusActive && in.Status != StatusInactive {
		return nil, fieldError("status", "status must be ACTIVE or INACTIVE")
	}
	return in, nil
}

// pick returns the first non-blank value, trimmed.
func pick(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// normalizePositionRefs accepts either raw ids or embedded position objects
// and keeps only entries that resolve to a well-formed id, preserving order.
// Malformed entries are dropped, not rejected: the positions list is
// supplementary input, not authoritative.
func normalizePositionRefs(raw []any) []uint {
	out := make([]uint, 0, len(raw))
	for _, entry := range raw {
		if id, ok := refID(entry); ok {
			out = append(out, id)
		}
	}
	return out
}

func refID(entry any) (uint, bool) {
	switch v := entry.(type) {
	case string:
		return parseIDString(v)
	case float64: // all JSON numbers bind as float64
		if v > 0 && v == math.Trunc(v) {
			return uint(v), true
		}
	case map[string]any:
		for _, key := range []string{"id", "_id"} {
			if inner, ok := v[key]; ok {
				return refID(inner)
			}
		}
	}
	return 0, false
}

func parseIDString(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseID validates a path identifier before any query is issued.
func ParseID(s string) (uint, error) {
	id, ok := parseIDString(s)
	if !ok {
		return 0, ErrInvalidID
	}
	return id, nil
}
