package handler

import (
	"context"

	"google.golang.org/grpc"
)

// TransactionServiceName gRPCサービス名
const TransactionServiceName = "transaction.TransactionService"

// 各メソッドの完全名
const (
	SubmitTransactionMethod = "/" + TransactionServiceName + "/SubmitTransaction"
	LoginMethod             = "/" + TransactionServiceName + "/Login"
	GenerateSignatureMethod = "/" + TransactionServiceName + "/GenerateSignature"
	TestSignatureMethod     = "/" + TransactionServiceName + "/TestSignature"
)

// TransactionServiceServer gRPC取引サービスのサーバー側インターフェース
type TransactionServiceServer interface {
	SubmitTransaction(ctx context.Context, req *SubmitTransactionRequest) (*SubmitTransactionResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GenerateSignature(ctx context.Context, req *SubmitTransactionRequest) (*SignatureResponse, error)
	TestSignature(ctx context.Context, req *TestSignatureRequest) (*SignatureResponse, error)
}

// RegisterTransactionServiceServer サービスをgRPCサーバーに登録
func RegisterTransactionServiceServer(s grpc.ServiceRegistrar, srv TransactionServiceServer) {
	s.RegisterService(&TransactionServiceDesc, srv)
}

// TransactionServiceDesc 取引サービスのサービス定義
var TransactionServiceDesc = grpc.ServiceDesc{
	ServiceName: TransactionServiceName,
	HandlerType: (*TransactionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitTransaction",
			Handler:    submitTransactionHandler,
		},
		{
			MethodName: "Login",
			Handler:    loginHandler,
		},
		{
			MethodName: "GenerateSignature",
			Handler:    generateSignatureHandler,
		},
		{
			MethodName: "TestSignature",
			Handler:    testSignatureHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func submitTransactionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).SubmitTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SubmitTransactionMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).SubmitTransaction(ctx, req.(*SubmitTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func loginHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoginMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func generateSignatureHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).GenerateSignature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateSignatureMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).GenerateSignature(ctx, req.(*SubmitTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func testSignatureHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TestSignatureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransactionServiceServer).TestSignature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestSignatureMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TransactionServiceServer).TestSignature(ctx, req.(*TestSignatureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TransactionServiceClient gRPC取引サービスのクライアント
type TransactionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTransactionServiceClient 新しいTransactionServiceClientを作成
func NewTransactionServiceClient(cc grpc.ClientConnInterface) *TransactionServiceClient {
	return &TransactionServiceClient{cc: cc}
}

// SubmitTransaction 取引を送信
func (c *TransactionServiceClient) SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SubmitTransactionResponse, error) {
	out := new(SubmitTransactionResponse)
	if err := c.cc.Invoke(ctx, SubmitTransactionMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// Login デモ用ログイン
func (c *TransactionServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, LoginMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateSignature 署名を生成
func (c *TransactionServiceClient) GenerateSignature(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SignatureResponse, error) {
	out := new(SignatureResponse)
	if err := c.cc.Invoke(ctx, GenerateSignatureMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// TestSignature サンプル署名を取得
func (c *TransactionServiceClient) TestSignature(ctx context.Context, in *TestSignatureRequest, opts ...grpc.CallOption) (*SignatureResponse, error) {
	out := new(SignatureResponse)
	if err := c.cc.Invoke(ctx, TestSignatureMethod, in, out, c.callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// callOptions JSONコーデックを既定で指定する
func (c *TransactionServiceClient) callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
