package unity

import (
	"context"
	"strings"
)

const (
	meshSuffix = "Mesh"

	meshFilterComponent   = "MeshFilter"
	meshRendererComponent = "MeshRenderer"
	meshProperty          = "mesh"

	// префикс ссылки на встроенный меш движка, к нему добавляется имя примитива
	builtinMeshPrefix = "UnityEngine.Mesh, UnityEngine.CoreModule:UnityEngine."
)

func isMeshShortcut(componentType string) bool {
	return strings.HasSuffix(componentType, meshSuffix)
}

// BuiltinMeshReference Ссылка на встроенный меш для типа вида "CubeMesh": "...UnityEngine.cube".
func BuiltinMeshReference(componentType string) string {
	primitive := strings.ToLower(strings.TrimSuffix(componentType, meshSuffix))
	return builtinMeshPrefix + primitive
}

// addMeshComponent Три запроса подряд: MeshFilter, MeshRenderer, установка MeshFilter.mesh.
// Если ответ шага без истинного success - он возвращается как есть, следующие шаги не
// выполняются. Уже добавленные компоненты не откатываются. Ошибки транспорта возвращаются сразу.
func (c *Client) addMeshComponent(ctx context.Context, object, componentType string) (Response, error) {
	resp, err := c.addComponent(ctx, object, meshFilterComponent)
	if err != nil || !resp.Success() {
		return resp, err
	}

	resp, err = c.addComponent(ctx, object, meshRendererComponent)
	if err != nil || !resp.Success() {
		return resp, err
	}

	return c.SetComponentProperty(ctx, object, meshFilterComponent, meshProperty, BuiltinMeshReference(componentType))
}
