package service

const (
	MaxLoanAmount      = 1_000_000_000.0 // 1 billón
	MaxInterestRate    = 1000.0          // 1000% anual
	MaxTermMonths      = 600             // 50 años
	MinTermMonths      = 1
	MaxDebtAmount      = 100_000_000.0 // 100 millones
	MaxDebtsPerRequest = 50            // máximo de deudas por request

	// Tope de iteraciones de las simulaciones (100 años)
	MaxScheduleMonths   = 1200
	MaxDebtPayoffMonths = MaxScheduleMonths

	// Un saldo por debajo de medio centavo se considera pagado
	DebtBalanceTolerance = 0.005

	// Límites de términos para recomendación
	MaxTermRangeMonths = 120 // máximo rango de términos a evaluar (10 años)
)

// moneyEpsilon absorbs float noise when comparing pooled amounts.
const moneyEpsilon = 1e-9
