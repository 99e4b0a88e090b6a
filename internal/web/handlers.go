package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sghaida/patterns/behavioral/strategy"
	"github.com/sghaida/patterns/creational/abstractfactory"
	"github.com/sghaida/patterns/creational/factorymethod"
	"github.com/sghaida/patterns/internal/numfmt"
	"github.com/sghaida/patterns/structural/composite"
	"github.com/sghaida/patterns/structural/decorator"
)

/*
   Composite: roof calculator
*/

type roofForm struct {
	RoofType     string `form:"roof-type"`
	MaterialType string `form:"material-type"`
	Width        string `form:"width"`
	Length       string `form:"length"`
}

type roofPage struct {
	Form          roofForm
	RoofTypes     []string
	MaterialTypes []string
	Result        string
}

func newRoofPage(f roofForm) roofPage {
	return roofPage{
		Form:          f,
		RoofTypes:     composite.RoofTypes(),
		MaterialTypes: composite.MaterialTypes(),
	}
}

func (s *Server) getComposite(c *gin.Context) {
	c.HTML(http.StatusOK, "composite", newRoofPage(roofForm{}))
}

// postCompositeCalculate never rejects input: unknown selectors add nothing and
// unparsable numbers become NaN, and the page shows whatever that totals to.
func (s *Server) postCompositeCalculate(c *gin.Context) {
	var f roofForm
	if err := c.ShouldBind(&f); err != nil {
		s.invalidInput(c, err)
		return
	}

	params := composite.RoofParams{
		Width:  composite.ParseDimension(f.Width),
		Length: composite.ParseDimension(f.Length),
	}
	total := composite.CalculateMaterialsForRoofType(f.RoofType, f.MaterialType, params)
	s.metrics.observe(patternComposite)

	page := newRoofPage(f)
	page.Result = composite.Summary(total)
	c.HTML(http.StatusOK, "composite", page)
}

/*
   Decorator: drug card
*/

type drugForm struct {
	Name         string `form:"name"`
	Expiration   string `form:"expiration"`
	Dosage       string `form:"dosage"`
	Manufacturer string `form:"manufacturer"`
}

type drugPage struct {
	Form   drugForm
	Result string
}

func (s *Server) getDecorator(c *gin.Context) {
	c.HTML(http.StatusOK, "decorator", drugPage{})
}

func (s *Server) postDecoratorApply(c *gin.Context) {
	var f drugForm
	if err := c.ShouldBind(&f); err != nil {
		s.invalidInput(c, err)
		return
	}

	drug := decorator.ApplyFeatures(decorator.Features{
		Name:         f.Name,
		Expiration:   f.Expiration,
		Dosage:       f.Dosage,
		Manufacturer: f.Manufacturer,
	})
	s.metrics.observe(patternDecorator)

	c.HTML(http.StatusOK, "decorator", drugPage{Form: f, Result: drug.Info()})
}

/*
   Abstract factory: widgets
*/

func (s *Server) getWidgets(c *gin.Context) {
	gui, err := abstractfactory.ForFamily(c.Param("family"))
	if err != nil {
		s.notFound(c, err)
		return
	}

	var buf bytes.Buffer
	if err := abstractfactory.Program(&buf, gui); err != nil {
		s.internalError(c, err)
		return
	}
	s.metrics.observe(patternAbstractFactory)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

/*
   Strategy: calculator API
*/

type strategyResponse struct {
	Strategy string `json:"strategy"`
	A        string `json:"a"`
	B        string `json:"b"`
	Result   string `json:"result"`
}

func (s *Server) getStrategy(c *gin.Context) {
	op := c.Param("op")
	st, err := strategy.Lookup(op)
	if err != nil {
		s.notFound(c, err)
		return
	}

	a, err := parseOperand(c, "a")
	if err != nil {
		s.invalidInput(c, err)
		return
	}
	b, err := parseOperand(c, "b")
	if err != nil {
		s.invalidInput(c, err)
		return
	}

	result := strategy.NewContext(st).Calculate(a, b)
	s.metrics.observe(patternStrategy)

	c.JSON(http.StatusOK, strategyResponse{
		Strategy: op,
		A:        c.Query("a"),
		B:        c.Query("b"),
		Result:   numfmt.Format(result),
	})
}

func parseOperand(c *gin.Context, name string) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, errors.New("missing query parameter " + strconv.Quote(name))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("query parameter " + strconv.Quote(name) + " is not a number")
	}
	return v, nil
}

/*
   Factory method: notifications
*/

func (s *Server) getNotification(c *gin.Context) {
	platform, err := factorymethod.ForPlatform(c.Param("platform"))
	if err != nil {
		s.notFound(c, err)
		return
	}

	var buf bytes.Buffer
	if err := factorymethod.ClientCode(&buf, platform); err != nil {
		s.internalError(c, err)
		return
	}
	s.metrics.observe(patternFactoryMethod)
	c.String(http.StatusOK, buf.String())
}

/*
   Error responses
*/

func (s *Server) invalidInput(c *gin.Context, err error) {
	s.logger.Warn("invalid input", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) notFound(c *gin.Context, err error) {
	s.logger.Info("unknown variant", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
