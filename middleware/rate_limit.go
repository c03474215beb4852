package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IP별 limiter + lastSeen(청소용)
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter는 map<ip, limiter>를 관리한다.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	reqPerMin int
	burst     int
	ttl       time.Duration
}

func NewIPRateLimiter(reqPerMin, burst int, ttl time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		reqPerMin: reqPerMin,
		burst:     burst,
		ttl:       ttl,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	rps := float64(rl.reqPerMin) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rl.burst)
	rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > rl.ttl {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func RateLimitByIP(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "요청이 너무 많습니다",
				"hint":    "잠시 후 다시 시도해주세요.",
			})
			return
		}
		c.Next()
	}
}

// 회원가입/로그인: 10 req/분/IP, burst 5
var authLimiter = NewIPRateLimiter(10, 5, 5*time.Minute)

func RateLimitAuth() gin.HandlerFunc {
	return RateLimitByIP(authLimiter)
}

// 게스트 퀴즈 답변: 공유 링크로 들어오는 비로그인 트래픽
var guestAnswerLimiter = NewIPRateLimiter(20, 10, 5*time.Minute)

func RateLimitGuestAnswer() gin.HandlerFunc {
	return RateLimitByIP(guestAnswerLimiter)
}

// 답변 등록: 정상 사용은 하루 몇 번이면 충분하다
var submitLimiter = NewIPRateLimiter(30, 10, 5*time.Minute)

func RateLimitSubmit() gin.HandlerFunc {
	return RateLimitByIP(submitLimiter)
}
