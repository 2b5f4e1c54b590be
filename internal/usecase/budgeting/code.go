package budgeting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const codePrefix = "ORC-V2"

// NewCode builds the user-visible budget code
// ORC-V2-<YYMM>-<base36 unix millis>-<3 digit random>.
// randN must return a value in [0, n).
func NewCode(now time.Time, randN func(n int) int) string {
	return fmt.Sprintf("%s-%s-%s-%03d",
		codePrefix,
		now.UTC().Format("0601"),
		strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
		randN(1000)%1000,
	)
}
