package roster

import (
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

const (
	codeLength      = 10
	maxCodeAttempts = 10
)

// generateCode draws random numeric codes until one is not taken by any
// teacher, giving up after maxCodeAttempts. The probe is not atomic with the
// later insert; the unique index on teachers.code is the final backstop
// against a concurrent create winning the same code.
func generateCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := randomDigits(codeLength)
		var n int64
		if err := db.Model(&models.Teacher{}).Where("code = ?", code).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

func randomDigits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte('0' + byte(rand.Intn(10)))
	}
	return b.String()
}
