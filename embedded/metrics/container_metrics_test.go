/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusContainerMetrics(t *testing.T) {
	m := NewPrometheusContainerMetrics("metrics-test")

	m.IncReallocations()
	m.IncReallocations()
	m.IncRefusedGrowth()
	m.AddShiftedElements(7)
	m.SetCapacity(16)
	m.SetSize(9)

	require.Equal(t, 2.0, testutil.ToFloat64(metricsReallocations.WithLabelValues("metrics-test")))
	require.Equal(t, 1.0, testutil.ToFloat64(metricsRefusedGrowth.WithLabelValues("metrics-test")))
	require.Equal(t, 7.0, testutil.ToFloat64(metricsShiftedElements.WithLabelValues("metrics-test")))
	require.Equal(t, 16.0, testutil.ToFloat64(metricsCapacity.WithLabelValues("metrics-test")))
	require.Equal(t, 9.0, testutil.ToFloat64(metricsSize.WithLabelValues("metrics-test")))
}

func TestPrometheusContainerMetricsAreScopedByID(t *testing.T) {
	a := NewPrometheusContainerMetrics("scoped-a")
	b := NewPrometheusContainerMetrics("scoped-b")

	a.SetCapacity(4)
	b.SetCapacity(32)

	require.Equal(t, 4.0, testutil.ToFloat64(metricsCapacity.WithLabelValues("scoped-a")))
	require.Equal(t, 32.0, testutil.ToFloat64(metricsCapacity.WithLabelValues("scoped-b")))
}

func TestNopContainerMetrics(t *testing.T) {
	m := NewNopContainerMetrics()

	require.NotPanics(t, func() {
		m.IncReallocations()
		m.IncRefusedGrowth()
		m.AddShiftedElements(3)
		m.SetCapacity(1)
		m.SetSize(1)
	})
}
