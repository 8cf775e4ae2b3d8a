package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// timeNowMillis 可在测试中替换，得到确定性的 timestamp/签名。
var timeNowMillis = func() int64 { return time.Now().UnixMilli() }

// Params 按插入顺序保存请求参数。交易所对签名串逐字节校验，
// 因此禁止重排、禁止对 value 做 URL 转义。
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func NewParams() *Params {
	return &Params{}
}

// Add 追加一个参数，返回自身便于链式调用。
func (p *Params) Add(key, value string) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Encode 按插入顺序序列化为 k=v&k=v，value 不做任何转义。
func (p *Params) Encode() string {
	parts := make([]string, 0, len(p.pairs))
	for _, kv := range p.pairs {
		parts = append(parts, kv.key+"="+kv.value)
	}
	return strings.Join(parts, "&")
}

// SignedQuery 追加 timestamp 后对序列化结果做 HMAC-SHA256 签名，
// 返回带 &signature=<hex> 的完整 query string。
func SignedQuery(p *Params, secret string) string {
	p.Add("timestamp", strconv.FormatInt(timeNowMillis(), 10))
	payload := p.Encode()
	return payload + "&signature=" + sign(secret, payload)
}

// sign 计算 payload 的 HMAC-SHA256，输出小写十六进制。
func sign(secret, payload string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
