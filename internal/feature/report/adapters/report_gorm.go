// Package adapters はreportフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	categoryentity "expense_backend/internal/feature/category/domain/entity"
	expenseentity "expense_backend/internal/feature/expense/domain/entity"
	"expense_backend/internal/feature/report/domain/entity"
	"expense_backend/internal/feature/report/usecase"
)

// reportGorm はReportRepositoryインターフェースのGORM実装です。
// 合計はSQLのSUMではなくGo側のdecimal加算で計算します。
// SQLiteテストドライバでは10進数カラムが浮動小数点として合計されるため、
// 固定小数点の正確な加算を両ドライバで保証するにはアプリ側で集計する必要があります。
type reportGorm struct {
	db *gorm.DB
}

// reportGormがReportRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ReportRepository = (*reportGorm)(nil)

// NewReportGorm は指定されたgorm.DB接続でreportGormの新しいインスタンスを生成します。
func NewReportGorm(db *gorm.DB) *reportGorm {
	return &reportGorm{db: db}
}

// monthRange は指定された年月の[開始, 終了)の半開区間を返します。
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// monthExpenses は指定されたユーザー・年月の支出を取得します。
func (r *reportGorm) monthExpenses(ctx context.Context, userID uint, year, month int) ([]expenseentity.Expense, error) {
	start, end := monthRange(year, month)

	var expenses []expenseentity.Expense
	err := r.db.WithContext(ctx).
		Select("id", "amount", "category_id").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// Monthly は月次の支出合計と件数を返します。
// 該当する支出がない場合は合計0.00・件数0を返します（エラーにはなりません）。
func (r *reportGorm) Monthly(ctx context.Context, userID uint, year, month int) (*entity.MonthlyReport, error) {
	expenses, err := r.monthExpenses(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &entity.MonthlyReport{
		Year:          year,
		Month:         month,
		TotalExpenses: total.Round(2),
		ExpenseCount:  len(expenses),
	}, nil
}

// MonthlyByCategory は月次の支出をカテゴリ別に集計して返します。
// 該当する支出が1件以上あるカテゴリのみ、カテゴリID昇順で返します。
func (r *reportGorm) MonthlyByCategory(ctx context.Context, userID uint, year, month int) ([]entity.CategorySummary, error) {
	expenses, err := r.monthExpenses(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	// カテゴリ別にGo側で集計
	totals := make(map[uint]decimal.Decimal)
	counts := make(map[uint]int)
	for _, e := range expenses {
		totals[e.CategoryID] = totals[e.CategoryID].Add(e.Amount)
		counts[e.CategoryID]++
	}

	if len(totals) == 0 {
		return []entity.CategorySummary{}, nil
	}

	// カテゴリ名を解決
	ids := make([]uint, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	var categories []categoryentity.Category
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]entity.CategorySummary, 0, len(totals))
	for id, total := range totals {
		out = append(out, entity.CategorySummary{
			CategoryID:   id,
			CategoryName: names[id],
			TotalAmount:  total.Round(2),
			ExpenseCount: counts[id],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })

	return out, nil
}
