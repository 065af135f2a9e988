package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/BKSpurgeon/rinku/autolink"
	"github.com/BKSpurgeon/rinku/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LinkifyRequest struct {
	// Text is the plain or HTML-marked-up text to scan. It is expected
	// to be already escaped; the service performs no escaping.
	Text string `json:"text" binding:"required,max=65536"`

	// Mode selects which link categories are detected.
	Mode string `json:"mode" binding:"omitempty,oneof=all urls email_addresses"`

	// LinkAttr overrides the configured attribute string inserted into
	// generated anchor tags.
	LinkAttr *string `json:"link_attr"`

	// SkipTags overrides the default skip list (a, pre, code, kbd,
	// script). An empty list disables skipping entirely; omitting the
	// field keeps the default.
	SkipTags []string `json:"skip_tags"`

	// ShortDomains makes dotless hosts like http://localhost linkable.
	ShortDomains bool `json:"short_domains"`
}

type LinkifyResponse struct {
	Result    string `json:"result"`
	LinkCount int    `json:"link_count"`
}

func (service *Service) linkify(ctx *gin.Context) {
	var req LinkifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	linkAttr := service.config.LinkAttr
	if req.LinkAttr != nil {
		linkAttr = *req.LinkAttr
	}

	requestID := ctx.GetString(requestIDKey)
	key := cacheKey(&req, linkAttr)

	// cache failures are never fatal, they just degrade to a rescan
	cached, err := service.store.GetLinkified(ctx, key)
	if err == nil {
		ctx.JSON(http.StatusOK, LinkifyResponse{
			Result:    cached.Result,
			LinkCount: cached.LinkCount,
		})
		return
	}
	if !errors.Is(err, tmpstore.ErrNotFound) {
		log.Warn().Err(err).Str("request_id", requestID).Msg("linkified cache lookup failed")
	}

	opts := autolink.Options{
		Mode:     mode,
		LinkAttr: linkAttr,
		SkipTags: req.SkipTags,
	}
	if req.ShortDomains {
		opts.Flags |= autolink.ShortDomains
	}

	out, count, err := autolink.Autolink([]byte(req.Text), opts)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	resp := LinkifyResponse{Result: string(out), LinkCount: count}

	if count > 0 {
		err = service.store.SaveLinkified(ctx, key, tmpstore.CachedResult{
			Result:    resp.Result,
			LinkCount: resp.LinkCount,
		}, service.config.LinkCacheTTL)
		if err != nil {
			log.Warn().Err(err).Str("request_id", requestID).Msg("failed to cache linkified result")
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

// parseMode maps the request mode names onto scan modes. The names
// mirror the linking modes callers already know from auto_link APIs.
func parseMode(mode string) (autolink.Mode, error) {
	switch mode {
	case "", "all":
		return autolink.ModeAll, nil
	case "urls":
		return autolink.ModeURLs, nil
	case "email_addresses":
		return autolink.ModeEmails, nil
	default:
		return 0, ErrInvalidMode
	}
}

// cacheKey derives a stable key from everything that affects the
// rendered output. A nil skip list and an empty one mean different
// things, so the nil case gets an explicit marker.
func cacheKey(req *LinkifyRequest, linkAttr string) string {
	skipTags := "default"
	if req.SkipTags != nil {
		skipTags = strings.Join(req.SkipTags, ",")
	}

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%t|%s|", req.Mode, linkAttr, req.ShortDomains, skipTags)
	h.Write([]byte(req.Text))

	return hex.EncodeToString(h.Sum(nil))
}
