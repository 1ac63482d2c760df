package unity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	transportMocks "github.com/trsv-dev/unity-scene-client/internal/transport/mocks"
)

const (
	addMeshFilterBody   = `{"command":"add_component","parameters":{"gameObjectName":"Box","componentTypeName":"MeshFilter"}}`
	addMeshRendererBody = `{"command":"add_component","parameters":{"gameObjectName":"Box","componentTypeName":"MeshRenderer"}}`
)

func setMeshBody(primitive string) string {
	return `{"command":"set_component_property","parameters":{"gameObjectName":"Box","componentType":"MeshFilter","propertyName":"mesh","value":"UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.` + primitive + `"}}`
}

// TestBuiltinMeshReference Проверяет ссылку на встроенный меш.
func TestBuiltinMeshReference(t *testing.T) {
	tests := []struct {
		componentType string
		want          string
	}{
		{"CubeMesh", "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.cube"},
		{"SphereMesh", "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.sphere"},
		{"CylinderMesh", "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.cylinder"},
		{"CapsuleMesh", "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.capsule"},
		{"PlaneMesh", "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine.plane"},
	}

	for _, tt := range tests {
		t.Run(tt.componentType, func(t *testing.T) {
			got := BuiltinMeshReference(tt.componentType)

			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, strings.HasSuffix(BuiltinMeshReference("CubeMesh"), "UnityEngine.cube"))
}

// TestIsMeshShortcut Проверяет распознавание типов *Mesh.
func TestIsMeshShortcut(t *testing.T) {
	assert.True(t, isMeshShortcut("CubeMesh"))
	assert.True(t, isMeshShortcut("Mesh"))
	assert.False(t, isMeshShortcut("MeshFilter"))
	assert.False(t, isMeshShortcut("MeshRenderer"))
	assert.False(t, isMeshShortcut("cubemesh"))
	assert.False(t, isMeshShortcut("Rigidbody"))
}

// TestAddMeshComponentSequence Все три шага выполняются по порядку, возвращается ответ последнего.
func TestAddMeshComponentSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTransport := transportMocks.NewMockTransport(ctrl)
	gomock.InOrder(
		expectBody(t, mockTransport, addMeshFilterBody, `{"success":true}`),
		expectBody(t, mockTransport, addMeshRendererBody, `{"success":true}`),
		expectBody(t, mockTransport, setMeshBody("cube"), `{"success":true,"message":"mesh set"}`),
	)

	resp, err := NewClient(mockTransport).AddComponent(context.Background(), "Box", "CubeMesh")

	require.NoError(t, err)
	assert.Equal(t, "mesh set", resp.Message())
}

// TestAddMeshComponentShortCircuit Шаг без истинного success прерывает последовательность.
func TestAddMeshComponentShortCircuit(t *testing.T) {
	tests := []struct {
		name    string
		replies []string
		want    any
	}{
		{
			name:    "MeshFilter неуспешен",
			replies: []string{`{"success":false,"message":"no such object"}`},
			want:    map[string]any{"success": false, "message": "no such object"},
		},
		{
			name:    "MeshFilter без поля success",
			replies: []string{`{"message":"?"}`},
			want:    map[string]any{"message": "?"},
		},
		{
			name:    "MeshFilter с пустым телом",
			replies: []string{``},
			want:    map[string]any{},
		},
		{
			name:    "MeshRenderer неуспешен",
			replies: []string{`{"success":true}`, `{"success":false,"message":"renderer failed"}`},
			want:    map[string]any{"success": false, "message": "renderer failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTransport := transportMocks.NewMockTransport(ctrl)
			bodies := []string{addMeshFilterBody, addMeshRendererBody}

			calls := make([]*gomock.Call, 0, len(tt.replies))
			for i, reply := range tt.replies {
				calls = append(calls, expectBody(t, mockTransport, bodies[i], reply))
			}
			gomock.InOrder(calls...)

			resp, err := NewClient(mockTransport).AddComponent(context.Background(), "Box", "SphereMesh")

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Value)
		})
	}
}

// TestAddMeshComponentTransportError Ошибка транспорта на втором шаге возвращается сразу, без отката.
func TestAddMeshComponentTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := errors.New("timeout")

	mockTransport := transportMocks.NewMockTransport(ctrl)
	gomock.InOrder(
		expectBody(t, mockTransport, addMeshFilterBody, `{"success":true}`),
		mockTransport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, cause),
	)

	_, err := NewClient(mockTransport).AddComponent(context.Background(), "Box", "CubeMesh")

	assert.ErrorIs(t, err, cause)
}
