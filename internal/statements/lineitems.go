package statements

import "msecli/internal/analysis"

// Field names a semantic line item the engine consumes.
type Field string

const (
	FieldCash                 Field = "cash"
	FieldShortTermInvestments Field = "short_term_investments"
	FieldAccountsReceivable   Field = "accounts_receivable"
	FieldInventory            Field = "inventory"
	FieldCurrentAssets        Field = "current_assets"
	FieldFixedAssets          Field = "fixed_assets"
	FieldTotalAssets          Field = "total_assets"
	FieldCurrentLiabilities   Field = "current_liabilities"
	FieldAccountsPayable      Field = "accounts_payable"
	FieldShortTermLoans       Field = "short_term_loans"
	FieldLongTermLoans        Field = "long_term_loans"
	FieldTotalEquity          Field = "total_equity"
	FieldRetainedEarnings     Field = "retained_earnings"
	FieldRevenue              Field = "revenue"
	FieldCOGS                 Field = "cogs"
	FieldGrossProfit          Field = "gross_profit"
	FieldEBIT                 Field = "ebit"
	FieldNetIncome            Field = "net_income"
	FieldInterestExpense      Field = "interest_expense"
	FieldOperatingCashFlow    Field = "operating_cash_flow"
	FieldSharesOutstanding    Field = "shares_outstanding"
)

// LineItem binds a semantic field to the verbatim statement label it is
// extracted from and the sheet it lives on.
type LineItem struct {
	Field Field
	Sheet Sheet
	Label string
}

// DefaultLineItems is the label table for the standard Mongolian statement
// format. Labels must match the source cells byte for byte, including the
// doubled space in the pre-tax profit caption; keeping them in one table
// instead of scattered literals is what makes them overridable.
var DefaultLineItems = []LineItem{
	{FieldCash, SheetBalance, "Мөнгө,түүнтэй адилтгах хөрөнгө"},
	{FieldShortTermInvestments, SheetBalance, "Борлуулах зорилгоор эзэмшиж буй эргэлтийн бус хөрөнгө (борлуулах бүлэг хөрөнгө)"},
	{FieldAccountsReceivable, SheetBalance, "Дансны авлага"},
	{FieldInventory, SheetBalance, "Бараа материал"},
	{FieldCurrentAssets, SheetBalance, "Эргэлтийн хөрөнгийн дүн"},
	{FieldFixedAssets, SheetBalance, "Эргэлтийн бус хөрөнгийн дүн"},
	{FieldTotalAssets, SheetBalance, "Нийт хөрөнгийн дүн"},
	{FieldCurrentLiabilities, SheetBalance, "Богино хугацаат өр төлбөрийн дүн"},
	{FieldAccountsPayable, SheetBalance, "Дансны өглөг"},
	{FieldShortTermLoans, SheetBalance, "Богино хугацаат зээл"},
	{FieldLongTermLoans, SheetBalance, "Урт хугацаат зээл"},
	{FieldTotalEquity, SheetBalance, "Эздийн өмчийн дүн"},
	{FieldRetainedEarnings, SheetBalance, "Хуримтлагдсан ашиг"},
	{FieldRevenue, SheetIncome, "Борлуулалтын орлого (цэвэр)"},
	{FieldCOGS, SheetIncome, "Борлуулалтын өртөг"},
	{FieldGrossProfit, SheetIncome, "Нийт ашиг ( алдагдал)"},
	{FieldEBIT, SheetIncome, "Татвар төлөхийн өмнөх  ашиг (алдагдал)"},
	{FieldNetIncome, SheetIncome, "Тайлант үеийн цэвэр ашиг ( алдагдал)"},
	{FieldInterestExpense, SheetIncome, "Орлогын татварын зардал"},
	{FieldOperatingCashFlow, SheetCashFlow, "Үндсэн үйл ажиллагааны цэвэр мөнгөн гүйлгээний дүн"},
	{FieldSharesOutstanding, SheetEquity, "Гаргасан хувьцааны тоо"},
}

// ExtractFundamentals extracts every configured line item from the workbook
// into the engine's input snapshot. Absent labels, non-numeric cells, and
// absent optional sheets all arrive as the missing sentinel.
func ExtractFundamentals(wb *Workbook, items []LineItem) analysis.Fundamentals {
	var f analysis.Fundamentals
	for _, item := range items {
		p := fieldPair(&f, item.Field)
		if p == nil {
			continue
		}
		*p = ExtractPair(wb.Table(item.Sheet), item.Label)
	}
	return f
}

func fieldPair(f *analysis.Fundamentals, field Field) *analysis.Pair {
	switch field {
	case FieldCash:
		return &f.Cash
	case FieldShortTermInvestments:
		return &f.ShortTermInvestments
	case FieldAccountsReceivable:
		return &f.AccountsReceivable
	case FieldInventory:
		return &f.Inventory
	case FieldCurrentAssets:
		return &f.CurrentAssets
	case FieldFixedAssets:
		return &f.FixedAssets
	case FieldTotalAssets:
		return &f.TotalAssets
	case FieldCurrentLiabilities:
		return &f.CurrentLiabilities
	case FieldAccountsPayable:
		return &f.AccountsPayable
	case FieldShortTermLoans:
		return &f.ShortTermLoans
	case FieldLongTermLoans:
		return &f.LongTermLoans
	case FieldTotalEquity:
		return &f.TotalEquity
	case FieldRetainedEarnings:
		return &f.RetainedEarnings
	case FieldRevenue:
		return &f.Revenue
	case FieldCOGS:
		return &f.COGS
	case FieldGrossProfit:
		return &f.GrossProfit
	case FieldEBIT:
		return &f.EBIT
	case FieldNetIncome:
		return &f.NetIncome
	case FieldInterestExpense:
		return &f.InterestExpense
	case FieldOperatingCashFlow:
		return &f.OperatingCashFlow
	case FieldSharesOutstanding:
		return &f.SharesOutstanding
	default:
		return nil
	}
}
