package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/domain"
	"storeops/internal/logger"
	"storeops/internal/repository"
	"storeops/internal/service"
	"storeops/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApiHandler struct {
	Db                    *sql.DB
	GoalService           service.GoalService
	StoreRepository       repository.StoreRepository
	StoreDayRepository    repository.StoreDayRepository
	UserAccountRepository repository.UserAccountRepository
	ApiRequestRepository  repository.ApiRequestRepository
	JwtDecodeToken        string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m *ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to storeops"})
	})

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/stores", m.listStores)
	authed.POST("/monthGoals", m.monthGoals)
	authed.POST("/runSuggestion", m.runSuggestion)
	authed.POST("/resetEvenSplit", m.resetEvenSplit)
	authed.POST("/editCell", m.editCell)
	authed.POST("/saveGoals", m.saveGoals)
	authed.POST("/publishGoals", m.publishGoals)

	return router
}

func (m *ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func contextWithLogger(c *gin.Context) context.Context {
	return context.WithValue(c.Request.Context(), logger.ContextKey, logger.New())
}

type draftCellJson struct {
	GoalDate         string  `json:"goalDate"`
	DayNum           int     `json:"dayNum"`
	Dow              int     `json:"dow"`
	TransactionsGoal int64   `json:"transactionsGoal"`
	NetSalesGoal     float64 `json:"netSalesGoal"`
	// emergent sales/transactions ratio - display only, never an
	// allocation input
	Atv *float64 `json:"atv"`
}

type draftGridJson struct {
	StoreID    uuid.UUID       `json:"storeID"`
	MonthStart string          `json:"monthStart"`
	State      string          `json:"state"`
	Provenance string          `json:"provenance"`
	Cells      []draftCellJson `json:"cells"`
}

func draftGridToJson(grid *domain.DraftGrid) draftGridJson {
	out := draftGridJson{
		StoreID:    grid.StoreID,
		MonthStart: util.FormatDate(grid.MonthStart),
		State:      string(grid.State),
		Provenance: grid.Provenance,
		Cells:      make([]draftCellJson, len(grid.Cells)),
	}
	for i, cell := range grid.Cells {
		sales, _ := cell.NetSalesGoal.Float64()
		c := draftCellJson{
			GoalDate:         util.FormatDate(cell.GoalDate),
			DayNum:           cell.DayNum,
			Dow:              int(cell.Dow),
			TransactionsGoal: cell.TransactionsGoal,
			NetSalesGoal:     sales,
		}
		if cell.TransactionsGoal > 0 {
			atv, _ := cell.NetSalesGoal.Div(decimal.NewFromInt(cell.TransactionsGoal)).Round(2).Float64()
			c.Atv = &atv
		}
		out.Cells[i] = c
	}
	return out
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m *ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
