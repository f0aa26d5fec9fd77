package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const idSuffixLen = 9

var maxSuffix = new(big.Int).Exp(big.NewInt(36), big.NewInt(idSuffixLen), nil)

// NewOrderID returns "order_<unix-ms>_<random base36>". The id is handed to
// the payment provider as its order reference and later keys the order row,
// so it has to be unique across every checkout attempt.
func NewOrderID() string {
	now := time.Now()

	n, err := rand.Int(rand.Reader, maxSuffix)
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % (1 << 46))
	}

	suffix := strconv.FormatInt(n.Int64(), 36)
	for len(suffix) < idSuffixLen {
		suffix = "0" + suffix
	}

	return fmt.Sprintf("order_%d_%s", now.UnixMilli(), suffix)
}
