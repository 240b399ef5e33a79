package ecs

import "testing"

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("expected component to be found")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("component data mismatch: got (%v, %v)", pos.X, pos.Y)
	}

	// 未添加的类型查不到
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("velocity component should not exist")
	}
}

func TestGenericRemove(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Fatal("expected component after add")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("component should be gone after remove")
	}
}

func TestGenericQuery(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("expected only id1, got %v", both)
	}

	posOnly := GetEntitiesWith1[*testPositionComponent](em)
	if len(posOnly) != 2 {
		t.Errorf("expected 2 entities with position, got %d", len(posOnly))
	}
}
