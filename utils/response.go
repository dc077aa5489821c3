package utils

// Response is the envelope every API handler replies with.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

var (
	ErrParameters = Response{Code: 2001, Msg: "parameter error"}
	ErrForbidden  = Response{Code: 2003, Msg: "role not permitted"}
	ErrInternal   = Response{Code: 2500, Msg: "internal error"}
)

func ResponseOK(data interface{}) Response {
	return Response{Code: 0, Msg: "ok", Data: data}
}

func ResponseErr(code int, msg string) Response {
	return Response{Code: code, Msg: msg}
}
