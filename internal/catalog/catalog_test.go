package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lufiasha/botdiscord/internal/domain"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "iron_sword", Name: "Железный меч", Type: domain.ItemTypeWeapon, Attack: 5},
		{ID: "mirror_shield", Name: "Зеркальный щит", Type: domain.ItemTypeArmor, Defense: 7},
		{ID: "calming_tea", Name: "Успокаивающий чай", Type: domain.ItemTypeConsumable, Effect: "sanity"},
		{ID: "loot_box", Name: "Сундук воспоминаний", Type: domain.ItemTypeBox},
	}
}

func testMobs() []domain.Mob {
	return []domain.Mob{
		{Name: "Тень в углу", XP: 10, Gold: 5, Drops: []string{"loot_box"}},
	}
}

func testBosses() []domain.Boss {
	return []domain.Boss{
		{Mob: domain.Mob{Name: "Мать Циклов", XP: 600, Gold: 150, Drops: []string{"iron_sword"}}, LevelReq: 10, CooldownMin: 240},
		{Mob: domain.Mob{Name: "Эхо Ты", XP: 100, Gold: 25, Drops: []string{"iron_sword"}}, LevelReq: 1, CooldownMin: 120},
		{Mob: domain.Mob{Name: "Хранитель подвала", XP: 250, Gold: 60, Drops: []string{"mirror_shield"}}, LevelReq: 5, CooldownMin: 180},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(testItems(), testMobs(), testBosses(), []string{"iron_sword", "calming_tea"})
	require.NoError(t, err)
	return c
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Iron Sword", "iron_sword"},
		{"Железный меч", "железный_меч"},
		{"  loot_box  ", "loot_box"},
		{"LOOT BOX", "loot_box"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestResolve(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("by id", func(t *testing.T) {
		item, ok := c.Resolve("iron_sword")
		require.True(t, ok)
		assert.Equal(t, "iron_sword", item.ID)
	})

	t.Run("by id with spaces", func(t *testing.T) {
		item, ok := c.Resolve("Iron Sword")
		require.True(t, ok)
		assert.Equal(t, "iron_sword", item.ID)
	})

	t.Run("by russian display name", func(t *testing.T) {
		item, ok := c.Resolve("Железный меч")
		require.True(t, ok)
		assert.Equal(t, "iron_sword", item.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := c.Resolve("экскалибур")
		assert.False(t, ok)
	})
}

func TestHardestEligibleBoss(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name     string
		level    int
		wantBoss string
		wantOK   bool
	}{
		{"level 1 gets the entry boss", 1, "Эхо Ты", true},
		{"level 4 still the entry boss", 4, "Эхо Ты", true},
		{"level 5 unlocks the keeper", 5, "Хранитель подвала", true},
		{"level 99 gets the hardest", 99, "Мать Циклов", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boss, ok := c.HardestEligibleBoss(tt.level)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBoss, boss.Name)
		})
	}

	t.Run("no eligible boss", func(t *testing.T) {
		c2, err := New(testItems(), testMobs(), []domain.Boss{
			{Mob: domain.Mob{Name: "Мать Циклов", XP: 600, Gold: 150}, LevelReq: 10},
		}, nil)
		require.NoError(t, err)

		_, ok := c2.HardestEligibleBoss(1)
		assert.False(t, ok)
	})
}

func TestBossesSortedByLevelReq(t *testing.T) {
	c := newTestCatalog(t)

	bosses := c.Bosses()
	require.Len(t, bosses, 3)
	assert.Equal(t, "Эхо Ты", bosses[0].Name)
	assert.Equal(t, "Хранитель подвала", bosses[1].Name)
	assert.Equal(t, "Мать Циклов", bosses[2].Name)
}

func TestValidation(t *testing.T) {
	t.Run("duplicate item id", func(t *testing.T) {
		items := append(testItems(), domain.Item{ID: "iron_sword", Name: "Копия", Type: domain.ItemTypeWeapon, Attack: 1})
		_, err := New(items, testMobs(), nil, nil)
		assert.ErrorIs(t, err, ErrDuplicateItem)
	})

	t.Run("weapon without attack", func(t *testing.T) {
		items := []domain.Item{{ID: "stick", Name: "Палка", Type: domain.ItemTypeWeapon}}
		_, err := New(items, testMobs(), nil, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown drop reference", func(t *testing.T) {
		mobs := []domain.Mob{{Name: "Тень", XP: 1, Gold: 1, Drops: []string{"no_such_item"}}}
		_, err := New(testItems(), mobs, nil, nil)
		assert.ErrorIs(t, err, ErrUnknownDropRef)
	})

	t.Run("empty mob table", func(t *testing.T) {
		_, err := New(testItems(), nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("reward pool reference", func(t *testing.T) {
		_, err := New(testItems(), testMobs(), nil, []string{"no_such_item"})
		assert.ErrorIs(t, err, ErrUnknownDropRef)
	})
}
