package middleware

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxDecodedBody caps an inflated request body. Checkout carts are small.
const maxDecodedBody = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// DecompressRequest inflates gzip request bodies before binding. Response
// compression is handled separately by gin-contrib/gzip.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(c.GetHeader("Content-Encoding"))
		if encoding != "gzip" && encoding != "x-gzip" {
			c.Next()
			return
		}

		compressed := c.Request.Body
		zr, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
			return
		}
		defer compressed.Close()
		defer zr.Close()

		c.Request.Body = &cappedReader{r: zr, left: maxDecodedBody}
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

// cappedReader fails once more than left bytes were inflated.
type cappedReader struct {
	r    io.Reader
	left int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.left <= 0 {
		var probe [1]byte
		if n, err := c.r.Read(probe[:]); n == 0 && errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, errBodyTooLarge
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	return n, err
}

func (c *cappedReader) Close() error { return nil }
