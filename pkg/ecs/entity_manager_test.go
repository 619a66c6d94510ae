package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testDropComponent struct {
	Dirty bool
	Width float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy mark should be cleared after cleanup")
	}
}

func TestDestroyEntityTwiceIsRecordedOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同一帧内水滴既被接住又越界时会被标记两次
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if got := len(em.entitiesToDestroy); got != 1 {
		t.Errorf("Expected 1 pending destroy, got %d", got)
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		em.AddComponent(em.CreateEntity(), &testDropComponent{})
	}

	em.DestroyAll()
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("Expected no entities after DestroyAll, got %d", em.EntityCount())
	}

	// ID 不会回收
	if id := em.CreateEntity(); id != 6 {
		t.Errorf("Expected next ID 6, got %d", id)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 50)
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testDropComponent{Dirty: i%3 == 0})
		ids = append(ids, id)
	}

	// 多次查询顺序一致且升序
	for round := 0; round < 5; round++ {
		got := em.GetEntitiesWith(reflect.TypeOf(&testDropComponent{}))
		if len(got) != len(ids) {
			t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
		}
		for i := range got {
			if got[i] != ids[i] {
				t.Fatalf("round %d: index %d expected %d, got %d", round, i, ids[i], got[i])
			}
		}
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testDropComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testDropComponent{})

	// 查询拥有 Position+Drop 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testDropComponent{}),
	)

	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}

// BenchmarkGetEntitiesWith 典型回合规模：几十个水滴 + 少量特效
func BenchmarkGetEntitiesWith(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 64; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testDropComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testDropComponent](em)
	}
}
