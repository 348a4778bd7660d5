package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"stickfight/define"
	pkglog "stickfight/pkg/log"
)

// DefaultIdleTTL 客户端令牌桶闲置多久后被回收
const DefaultIdleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端 IP 分桶的令牌桶限流
// 闲置超过 idleTTL 的桶会在下一次取桶时被清理
type RateLimiter struct {
	bucket    map[string]*client
	rate      rate.Limit
	burstSize int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	mutex     sync.Mutex
	log       logrus.FieldLogger
}

// NewRateLimiter 创建限流器，reqRate 为 0 时不限流
func NewRateLimiter(reqRate float64, burstSize int, logger logrus.FieldLogger) *RateLimiter {
	if burstSize <= 0 {
		burstSize = 1
	}
	return &RateLimiter{
		bucket:    make(map[string]*client),
		rate:      rate.Limit(reqRate),
		burstSize: burstSize,
		idleTTL:   DefaultIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
		log:       logger,
	}
}

// GetLimiterFrom 获取某个 IP 的令牌桶
func (r *RateLimiter) GetLimiterFrom(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idleTTL {
		r.sweep(now)
	}

	c, exist := r.bucket[ip]
	if !exist {
		c = &client{limiter: rate.NewLimiter(r.rate, r.burstSize)}
		r.bucket[ip] = c
	}
	c.lastSeen = now

	return c.limiter
}

// Len 当前保留的令牌桶数量
func (r *RateLimiter) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.bucket)
}

// sweep 调用方需持有 mutex
func (r *RateLimiter) sweep(now time.Time) {
	for ip, c := range r.bucket {
		if now.Sub(c.lastSeen) >= r.idleTTL {
			delete(r.bucket, ip)
		}
	}
	r.lastSweep = now
}

// Handler gin 中间件
func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.rate <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if !r.GetLimiterFrom(clientIP).Allow() {
			r.log.WithField(pkglog.RequestIDKey, GetRequestID(c)).Warnf("⚠️ 客户端 %s 请求过于频繁", clientIP)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, define.GenerateResponse{
				Success: false,
				Message: "请求过于频繁，请稍后再试",
			})
			return
		}

		c.Next()
	}
}
