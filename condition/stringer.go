package condition

import (
	"fmt"
)

func stringOf(s fmt.Stringer) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}
