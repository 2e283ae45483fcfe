package discount

import (
	"github.com/shopspring/decimal"
)

// Band 合計金額の範囲と基本割引率（上限を含む）
type Band struct {
	Max  int64 // 0 の場合は上限なし
	Rate decimal.Decimal
}

var (
	// bands 基本割引率の段階表（昇順）
	bands = []Band{
		{Max: 19999, Rate: decimal.Zero},
		{Max: 50000, Rate: decimal.New(5, -2)},
		{Max: 80000, Rate: decimal.New(7, -2)},
		{Max: 120000, Rate: decimal.New(10, -2)},
		{Max: 0, Rate: decimal.New(15, -2)},
	}

	primeBonusRate   = decimal.New(8, -2)
	primeBonusFloor  = int64(50000)
	endsInFiveRate   = decimal.New(10, -2)
	endsInFiveFloor  = int64(90000)
	maxDiscountRatio = decimal.New(20, -2)
)

// Breakdown 割引の内訳
type Breakdown struct {
	TotalAmount int64
	BaseRate    decimal.Decimal
	PrimeBonus  bool // 素数かつ50000超
	FiveBonus   bool // 一の位が5かつ90000超
	Capped      bool // 上限20%で打ち切った
	Discount    int64
}

// Calculate 合計金額から割引額を算出する
func Calculate(totalAmount int64) int64 {
	return Explain(totalAmount).Discount
}

// Explain 合計金額から割引額と内訳を算出する
// 端数は切り捨てる
func Explain(totalAmount int64) Breakdown {
	amount := decimal.NewFromInt(totalAmount)
	b := Breakdown{
		TotalAmount: totalAmount,
		BaseRate:    BaseRate(totalAmount),
	}

	discount := amount.Mul(b.BaseRate)

	if totalAmount > primeBonusFloor && IsPrime(totalAmount) {
		b.PrimeBonus = true
		discount = discount.Add(amount.Mul(primeBonusRate))
	}

	if totalAmount%10 == 5 && totalAmount > endsInFiveFloor {
		b.FiveBonus = true
		discount = discount.Add(amount.Mul(endsInFiveRate))
	}

	if limit := amount.Mul(maxDiscountRatio); discount.GreaterThan(limit) {
		b.Capped = true
		discount = limit
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}

	b.Discount = discount.IntPart()
	return b
}

// Rate 適用された実効割引率（上限適用後）
func (b Breakdown) Rate() decimal.Decimal {
	rate := b.BaseRate
	if b.PrimeBonus {
		rate = rate.Add(primeBonusRate)
	}
	if b.FiveBonus {
		rate = rate.Add(endsInFiveRate)
	}
	if rate.GreaterThan(maxDiscountRatio) {
		return maxDiscountRatio
	}
	return rate
}

// BaseRate 合計金額に対応する基本割引率を返す
func BaseRate(totalAmount int64) decimal.Decimal {
	for _, band := range bands {
		if band.Max == 0 || totalAmount <= band.Max {
			return band.Rate
		}
	}
	return decimal.Zero
}

// IsPrime 試し割りで素数判定する
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
