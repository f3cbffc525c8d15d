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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ContainerMetrics interface {
	IncReallocations()
	IncRefusedGrowth()
	AddShiftedElements(n int)
	SetCapacity(n int)
	SetSize(n int)
}

var (
	metricsReallocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsa_container_reallocations_total",
		Help: "Number of times the backing buffer of a container was reallocated",
	}, []string{"container_id"})

	metricsRefusedGrowth = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsa_container_refused_growth_total",
		Help: "Number of growth requests refused because they exceeded the maximum capacity",
	}, []string{"container_id"})

	metricsShiftedElements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dsa_container_shifted_elements_total",
		Help: "Number of elements moved in place by positional inserts and removals",
	}, []string{"container_id"})

	metricsCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dsa_container_capacity",
		Help: "Number of allocated element slots",
	}, []string{"container_id"})

	metricsSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dsa_container_size",
		Help: "Number of live elements",
	}, []string{"container_id"})
)

var (
	_ ContainerMetrics = &prometheusContainerMetrics{}
	_ ContainerMetrics = &nopContainerMetrics{}
)

type prometheusContainerMetrics struct {
	reallocations prometheus.Counter
	refusedGrowth prometheus.Counter
	shifted       prometheus.Counter
	capacity      prometheus.Gauge
	size          prometheus.Gauge
}

// NewPrometheusContainerMetrics binds the shared collectors to the given container id.
func NewPrometheusContainerMetrics(id string) ContainerMetrics {
	return &prometheusContainerMetrics{
		reallocations: metricsReallocations.WithLabelValues(id),
		refusedGrowth: metricsRefusedGrowth.WithLabelValues(id),
		shifted:       metricsShiftedElements.WithLabelValues(id),
		capacity:      metricsCapacity.WithLabelValues(id),
		size:          metricsSize.WithLabelValues(id),
	}
}

func (m *prometheusContainerMetrics) IncReallocations() {
	m.reallocations.Inc()
}

func (m *prometheusContainerMetrics) IncRefusedGrowth() {
	m.refusedGrowth.Inc()
}

func (m *prometheusContainerMetrics) AddShiftedElements(n int) {
	m.shifted.Add(float64(n))
}

func (m *prometheusContainerMetrics) SetCapacity(n int) {
	m.capacity.Set(float64(n))
}

func (m *prometheusContainerMetrics) SetSize(n int) {
	m.size.Set(float64(n))
}

type nopContainerMetrics struct {
}

func NewNopContainerMetrics() ContainerMetrics {
	return &nopContainerMetrics{}
}

func (m *nopContainerMetrics) IncReallocations() {
}

func (m *nopContainerMetrics) IncRefusedGrowth() {
}

func (m *nopContainerMetrics) AddShiftedElements(n int) {
}

func (m *nopContainerMetrics) SetCapacity(n int) {
}

func (m *nopContainerMetrics) SetSize(n int) {
}
