package pathdml

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("%w: radii 0, 10", ErrArcConversion)
	err := &GenerationError{Index: 3, Err: cause}

	if !errors.Is(err, ErrArcConversion) {
		t.Error("errors.Is() does not see through GenerationError")
	}
	if !strings.Contains(err.Error(), "command 3") {
		t.Errorf("Error() = %q, missing command index", err.Error())
	}
}

func TestSentinelPrefixes(t *testing.T) {
	for _, err := range []error{
		ErrParse, ErrConfiguration, ErrTransform, ErrArcConversion, ErrInvalidArgument,
	} {
		if !strings.HasPrefix(err.Error(), "pathdml: ") {
			t.Errorf("sentinel %q missing package prefix", err.Error())
		}
	}
}
