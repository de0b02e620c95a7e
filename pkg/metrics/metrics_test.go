package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	success := testutil.ToFloat64(requestsTotal.WithLabelValues(string(StageCompletion), StatusSuccess))
	failure := testutil.ToFloat64(requestsTotal.WithLabelValues(string(StageCompletion), StatusError))

	Observe(StageCompletion, time.Now(), nil)
	Observe(StageCompletion, time.Now(), errors.New("boom"))
	Observe(StageCompletion, time.Now(), errors.New("boom"))

	require.Equal(t, success+1, testutil.ToFloat64(requestsTotal.WithLabelValues(string(StageCompletion), StatusSuccess)))
	require.Equal(t, failure+2, testutil.ToFloat64(requestsTotal.WithLabelValues(string(StageCompletion), StatusError)))
}
