package darklimb

import(
	"fmt"
)

// MissingFieldError means a header card the correction needs is not
// present in the input file.
type MissingFieldError struct {
	Key string
}

func (e MissingFieldError)Error() string {
	return fmt.Sprintf("header field %s missing", e.Key)
}

// DegenerateImageError means the image can't be normalized: either
// every pixel is zero, or the limb model evaluated to zero somewhere.
// Both would otherwise turn into silent NaN/Inf pixels.
type DegenerateImageError struct {
	Reason string
}

func (e DegenerateImageError)Error() string {
	return fmt.Sprintf("degenerate image: %s", e.Reason)
}
