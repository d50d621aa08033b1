package converter

import (
	gameDTO "plink_backend/internal/api/dto/game"
	settingsDTO "plink_backend/internal/api/dto/settings"
	"plink_backend/internal/model"
)

func ToGameStateView(st model.GameState) gameDTO.GameStateView {
	return gameDTO.GameStateView{
		Coins:            st.Coins,
		CoinsPerTap:      st.CoinsPerTap,
		UpgradeLevels:    st.UpgradeLevels,
		TotalCoinsEarned: st.TotalCoinsEarned,
	}
}

func ToStateResponse(ui model.UIState) gameDTO.StateResponse {
	return gameDTO.StateResponse{
		GameStateView:       ToGameStateView(ui.GameState),
		IsLoading:           ui.IsLoading,
		TapAnimationCounter: ui.TapAnimationCounter,
	}
}

func ToGambleResponse(res model.GambleResult) gameDTO.GambleResponse {
	return gameDTO.GambleResponse{
		RoundID: res.RoundID.String(),
		Outcome: string(res.Outcome),
		Wager:   res.Wager,
		Balance: res.Balance,
	}
}

func ToPurchaseResponse(res model.PurchaseResult) gameDTO.PurchaseResponse {
	return gameDTO.PurchaseResponse{
		Outcome:   string(res.Outcome),
		UpgradeID: string(res.UpgradeID),
		PricePaid: res.PricePaid,
		State:     ToGameStateView(res.State),
	}
}

func ToShopResponse(st model.GameState, catalog model.Catalog) gameDTO.ShopResponse {
	upgrades := make([]gameDTO.ShopUpgrade, 0, len(catalog))
	for _, u := range catalog {
		level := st.UpgradeLevel(u.ID)
		upgrades = append(upgrades, gameDTO.ShopUpgrade{
			ID:          string(u.ID),
			Title:       u.Title,
			Description: u.Description,
			Level:       level,
			MaxLevel:    u.MaxLevel,
			Price:       u.Price(level),
			Affordable:  u.IsAffordable(st.Coins, level),
			Purchasable: u.IsPurchasable(level),
		})
	}
	return gameDTO.ShopResponse{
		Coins:    st.Coins,
		Upgrades: upgrades,
	}
}

func ToThemeResponse(mode model.ThemeMode) settingsDTO.ThemeResponse {
	return settingsDTO.ThemeResponse{
		ThemeMode: mode.String(),
	}
}
