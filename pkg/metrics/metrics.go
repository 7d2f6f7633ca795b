// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - Counter：只增不减的累计值（请求总数、下单总数、上传记录数）
//   - Gauge：可增可减的瞬时值（处理中的请求数）
//   - Histogram：观测值分布（请求耗时，自动计算P50/P90/P99）
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds），
// 标签只用低基数维度（method/path/status），不要用user_id等高基数值。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 订单指标

	// OrdersPlacedTotal 下单成功总数（Counter）
	OrdersPlacedTotal prometheus.Counter

	// OrdersFailedTotal 下单失败总数（Counter）
	OrdersFailedTotal prometheus.Counter

	// OrderPlacementDuration 下单耗时（Histogram）
	OrderPlacementDuration prometheus.Histogram

	// 图书上传指标

	// BooksUploadedTotal CSV上传处理的记录总数（Counter）
	BooksUploadedTotal prometheus.Counter

	// BooksUploadResultTotal 按结果区分的上传记录数（Counter）
	// 标签：result（inserted/merged/rejected）
	BooksUploadResultTotal *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：routing_key、result（success/failure/rejected）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，promauto会注册到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookshop_http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookshop_http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	OrdersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_orders_placed_total",
			Help: "下单成功总数",
		},
	)

	OrdersFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_orders_failed_total",
			Help: "下单失败总数（校验失败或库存不足）",
		},
	)

	OrderPlacementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookshop_order_placement_duration_seconds",
			Help:    "下单耗时分布（含事务）",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	BooksUploadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_books_uploaded_total",
			Help: "CSV上传处理的图书记录总数",
		},
	)

	BooksUploadResultTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_books_upload_result_total",
			Help: "按结果区分的图书上传记录数",
		},
		[]string{"result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)
}

// =========================================
// 辅助函数（业务代码统一通过这些入口打点，nil安全）
// =========================================

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// AddCounter Counter增加指定值
func AddCounter(counter prometheus.Counter, delta float64) {
	if counter != nil {
		counter.Add(delta)
	}
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

// AddCounterVec 带标签的Counter增加指定值
func AddCounterVec(counter *prometheus.CounterVec, labels map[string]string, delta float64) {
	if counter != nil {
		counter.With(labels).Add(delta)
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}
