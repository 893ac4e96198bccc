package render

import (
	"fmt"
	"strings"

	"github.com/l1jgo/planter/internal/component"
)

// WalletText is the HUD line for one wallet.
func WalletText(res *component.Resources) string {
	var b strings.Builder
	for i, k := range component.ResourceKinds() {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s %d", k, res.Get(k))
	}
	return b.String()
}

// Title is the window title with the measured frame rate.
func Title(base string, fps float64) string {
	return fmt.Sprintf("%s | %.0f fps", base, fps)
}
