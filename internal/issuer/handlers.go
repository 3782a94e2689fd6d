package issuer

import (
	"fmt"
	"net/http"
	"time"

	dropbox "github.com/dropbox/godropbox/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"tokenbox/internal/crypto"
	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
	"tokenbox/internal/transport"
)

// maxRequestBytes bounds a token request body.
const maxRequestBytes = 64 * 1024

// PublicKeys is the body of GET /api1/getPublicKey.
type PublicKeys struct {
	Name    string `json:"name"`
	Box     string `json:"box"`
	Signing string `json:"signing"`
}

// Limiter caps the request body size.
func Limiter(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)
}

// Recovery logs handler panics and errors.
func Recovery(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"error": dropbox.New(fmt.Sprintf("%s", r)),
			}).Error("middleware: Handler panic")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
	}()
	defer func() {
		if len(c.Errors) != 0 {
			logrus.WithFields(logrus.Fields{
				"error": c.Errors,
			}).Error("middleware: Handler error")
		}
	}()

	c.Next()
}

// Handler serves the issuer HTTP API.
type Handler struct {
	issuer   *Issuer
	delay    time.Duration
	gatherer prometheus.Gatherer
}

// NewHandler returns a Handler. Replies are held back by delay; metrics
// are served from gatherer when it is not nil.
func NewHandler(iss *Issuer, delay time.Duration, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		issuer:   iss,
		delay:    delay,
		gatherer: gatherer,
	}
}

// Register installs middleware and routes on engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.Use(Limiter)
	engine.Use(Recovery)

	engine.POST(transport.TokenPath, h.tokenPost)
	engine.GET("/api1/getPublicKey", h.publicKeyGet)
	if h.gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

// Engine returns a gin engine with the API registered.
func (h *Handler) Engine() *gin.Engine {
	engine := gin.New()
	h.Register(engine)
	return engine
}

func (h *Handler) tokenPost(c *gin.Context) {
	req := domain.TokenRequest{}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.issuer.metrics.bad.Inc()
		c.Error(err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reply, err := h.issuer.Issue(req, c.ClientIP())
	if err != nil {
		c.Error(err)
		if errortypes.IsRequest(err) {
			c.AbortWithStatus(http.StatusBadRequest)
		} else {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			return
		}
	}

	c.JSON(http.StatusOK, reply)
}

func (h *Handler) publicKeyGet(c *gin.Context) {
	c.JSON(http.StatusOK, &PublicKeys{
		Name:    h.issuer.Name(),
		Box:     crypto.HexEncode(h.issuer.BoxPublic().Slice()),
		Signing: crypto.HexEncode(h.issuer.SigningPublic().Slice()),
	})
}
