package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(leadsCreated)
	RecordLeadCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(leadsCreated))

	before = testutil.ToFloat64(kvkLookups.WithLabelValues("found"))
	RecordKvkLookup("found")
	assert.Equal(t, before+1, testutil.ToFloat64(kvkLookups.WithLabelValues("found")))

	before = testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/healthz", "200"))
	ObserveRequest("GET", "/healthz", 200, 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/healthz", "200")))
}
