//go:build gomock || generate

package srarq

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package srarq -self_package github.com/srarq/srarq -destination mock_transport_test.go github.com/srarq/srarq Transport"
