package domain

// Геометрия арены и баланс уровня.
const (
	// GridSize - сторона квадратной арены в клетках.
	GridSize = 36

	// ObstacleHealth - здоровье обычного разрушаемого блока.
	ObstacleHealth = 20
	// MainBlockHealth - здоровье главного блока, прячущего ключевой предмет.
	MainBlockHealth = 40

	// DestructibleRatio - доля разрушаемых блоков среди препятствий.
	DestructibleRatio = 0.3

	// MinSpawnDistance - минимальное манхэттенское расстояние
	// между спавном игрока и каждым зомби.
	MinSpawnDistance = 5

	// PlacementRetryLimit - предел повторных бросков при размещении
	// сущностей. Исчерпание означает провал генерации уровня.
	PlacementRetryLimit = 1000
)

// Боевые параметры.
const (
	// PlayerAttack - урон выстрела игрока по блоку или зомби.
	PlayerAttack = 10
	// ZombieAttack - урон удара зомби. Он же служит единицей
	// "ломаемости" при оценке стоимости прохода через блок.
	ZombieAttack = 10
	// PlayerMaxHealth - стартовое здоровье игрока.
	PlayerMaxHealth = 100
	// ZombieMaxHealth - стартовое здоровье зомби.
	ZombieMaxHealth = 30

	// AggroRadius - с какого манхэттенского расстояния зомби
	// начинает преследование.
	AggroRadius = 12

	// FireRange - дальность выстрела в клетках; дальше снаряд
	// теряет силу и исчезает.
	FireRange = 10

	// BreakFactor - вес одного удара по блоку при расчете стоимости
	// ребра: чем здоровее блок, тем дороже идти "сквозь" него.
	BreakFactor = 0.1
)

// Типы сущностей боевого цикла.
const (
	EntityPlayer = "player"
	EntityZombie = "zombie"
)

// Стоимости действий в тактах планировщика ходов.
const (
	CostMove   = 10
	CostAttack = 10
	CostWait   = 5
)
