package order

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidateSymbol 校验交易对格式：非空、大写字母/数字、长度>=6（如 BTCUSDT）。
func ValidateSymbol(symbol string) *ValidationError {
	if symbol == "" {
		return invalidf(KindInvalidSymbol, "symbol cannot be empty")
	}
	upper := strings.ToUpper(symbol)
	if !symbolPattern.MatchString(upper) {
		return invalidf(KindInvalidSymbol, "invalid symbol format %q, use letters and digits only (e.g. BTCUSDT)", symbol)
	}
	if len(upper) < 6 {
		return invalidf(KindInvalidSymbol, "symbol %q is too short", symbol)
	}
	return nil
}

// ValidateSide 校验方向，大小写不敏感。
func ValidateSide(side string) *ValidationError {
	if side == "" {
		return invalidf(KindInvalidSide, "side cannot be empty")
	}
	switch strings.ToUpper(side) {
	case string(SideBuy), string(SideSell):
		return nil
	}
	return invalidf(KindInvalidSide, "invalid side %q, must be one of: BUY, SELL", side)
}

// ValidateOrderType 校验订单类型，大小写不敏感。
func ValidateOrderType(orderType string) *ValidationError {
	if orderType == "" {
		return invalidf(KindInvalidOrderType, "order type cannot be empty")
	}
	switch strings.ToUpper(orderType) {
	case string(TypeMarket), string(TypeLimit):
		return nil
	}
	return invalidf(KindInvalidOrderType, "invalid order type %q, must be one of: MARKET, LIMIT", orderType)
}

// ValidateQuantity 校验数量为正且有限；"不是数字"与"非正数"消息不同但同属一类。
func ValidateQuantity(quantity string) *ValidationError {
	if quantity == "" {
		return invalidf(KindInvalidQuantity, "quantity cannot be empty")
	}
	q, err := strconv.ParseFloat(quantity, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return invalidf(KindInvalidQuantity, "invalid quantity %q, must be a number", quantity)
	}
	if q <= 0 {
		return invalidf(KindInvalidQuantity, "quantity must be positive, got %v", q)
	}
	return nil
}

// ValidatePrice 校验价格：LIMIT 必填且为正，MARKET 禁止携带价格。
func ValidatePrice(price, orderType string) *ValidationError {
	switch strings.ToUpper(orderType) {
	case string(TypeLimit):
		if price == "" {
			return &ValidationError{Kind: KindInvalidPrice, Message: "Price is required for LIMIT orders"}
		}
		p, err := strconv.ParseFloat(price, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return invalidf(KindInvalidPrice, "invalid price %q, must be a number", price)
		}
		if p <= 0 {
			return invalidf(KindInvalidPrice, "price must be positive, got %v", p)
		}
	case string(TypeMarket):
		if price != "" {
			return invalidf(KindUnexpectedPrice, "price should not be provided for MARKET orders (price is determined by market)")
		}
	}
	return nil
}

// ValidateAll runs all checks in a fixed order (symbol, side, type,
// quantity, price) and returns the first failure. It never collects
// multiple errors; the first invalid field wins.
func ValidateAll(symbol, side, orderType, quantity, price string) *ValidationError {
	checks := []*ValidationError{
		ValidateSymbol(symbol),
		ValidateSide(side),
		ValidateOrderType(orderType),
		ValidateQuantity(quantity),
		ValidatePrice(price, orderType),
	}
	for _, verr := range checks {
		if verr != nil {
			return verr
		}
	}
	return nil
}

// NewRequest 校验原始输入并构造不可变的下单请求；symbol/side/type 统一转大写，
// 并生成 newClientOrderId（uuid，便于在交易所侧追踪）。
func NewRequest(symbol, side, orderType, quantity, price string) (Request, error) {
	if verr := ValidateAll(symbol, side, orderType, quantity, price); verr != nil {
		return Request{}, verr
	}
	req := Request{
		Symbol:        strings.ToUpper(symbol),
		Side:          Side(strings.ToUpper(side)),
		Type:          Type(strings.ToUpper(orderType)),
		Quantity:      quantity,
		ClientOrderID: uuid.NewString(),
	}
	if req.Type == TypeLimit {
		req.Price = price
	}
	return req, nil
}
