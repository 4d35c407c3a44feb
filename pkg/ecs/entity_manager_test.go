package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count: got %d, want 2", em.Count())
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

// TestAddComponentToMissingEntity 不存在的实体添加组件应被忽略
func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testPositionComponent{})

	if em.HasComponent(42, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("AddComponent on unknown entity must not create it")
	}
}

// TestRemoveEntityIsImmediate 立即删除在同一帧内生效
func TestRemoveEntityIsImmediate(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})

	if !em.RemoveEntity(id1) {
		t.Fatal("RemoveEntity should report success for a live entity")
	}
	if em.RemoveEntity(id1) {
		t.Error("RemoveEntity should report false for an already removed entity")
	}

	ids := GetEntitiesWith1[*testPositionComponent](em)
	if len(ids) != 1 || ids[0] != id2 {
		t.Errorf("After removal: got %v, want [%d]", ids, id2)
	}
}

// TestClearKeepsIDsMonotonic 清空后新实体的 ID 不复用
func TestClearKeepsIDsMonotonic(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	last := em.CreateEntity()

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Count after Clear: got %d, want 0", em.Count())
	}

	next := em.CreateEntity()
	if next <= last {
		t.Errorf("ID after Clear should keep increasing: got %d, previous %d", next, last)
	}
}

// TestGetEntitiesWithInsertionOrder 查询结果按创建顺序返回
func TestGetEntitiesWithInsertionOrder(t *testing.T) {
	em := NewEntityManager()

	want := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		want = append(want, id)
	}
	// 删除中间几个，顺序仍应保持
	em.RemoveEntity(want[3])
	em.RemoveEntity(want[11])
	want = append(want[:11], want[12:]...)
	want = append(want[:3], want[4:]...)

	// 多次查询，map 遍历的随机性不应影响结果
	for round := 0; round < 5; round++ {
		got := GetEntitiesWith1[*testPositionComponent](em)
		if len(got) != len(want) {
			t.Fatalf("round %d: got %d entities, want %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: index %d got %d, want %d", round, i, got[i], want[i])
			}
		}
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Position+Velocity query: got %v, want [%d]", entities, id1)
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}

	none := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(none) != 0 {
		t.Errorf("Expected no entity with tag component, got %v", none)
	}
}

// TestGenericGetComponent 泛型接口与反射接口返回同一个实例
func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 10, Y: 20})
	em.AddComponent(id, &testVelocityComponent{VX: 5, VY: 10})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Position component should be found")
	}
	pos.X = 11

	raw, _ := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if raw.(*testPositionComponent).X != 11 {
		t.Error("GetComponent should return the stored pointer, not a copy")
	}

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok || vel.VX != 5 || vel.VY != 10 {
		t.Errorf("Velocity component mismatch: %+v", vel)
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("Missing component must report ok=false")
	}
	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should find velocity")
	}
}
