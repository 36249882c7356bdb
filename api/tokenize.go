package api

import (
	"net/http"

	"github.com/Drolfothesgnir/docfmt/javadoc"
	"github.com/gin-gonic/gin"
)

type TokenizeRequest struct {
	// Comment is the full Javadoc comment, including "/**" and "*/".
	Comment string `json:"comment" binding:"required"`
}

// TokenView is the wire representation of a single token.
type TokenView struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type TokenizeResponse struct {
	Tokens []TokenView `json:"tokens"`
}

// tokenizeComment exposes the raw token stream. It exists for tooling and
// debugging: editor plugins can inspect how a comment will be understood
// before asking for a reformat.
func (s *Service) tokenizeComment(ctx *gin.Context) {
	var req TokenizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	tokens, err := javadoc.Lex(req.Comment)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	views := make([]TokenView, len(tokens))
	for i, tok := range tokens {
		views[i] = TokenView{Type: tok.Type.String(), Text: tok.Text}
	}

	ctx.JSON(http.StatusOK, TokenizeResponse{Tokens: views})
}
